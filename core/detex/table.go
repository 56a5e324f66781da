package detex

// accents maps accent command names to their combining marks. The mark is
// attached to the first character of the command's argument and recomposed
// with NFC, so \'e becomes the precomposed é.
var accents = map[string]rune{
	"'": '́', // acute
	"`": '̀', // grave
	"^": '̂', // circumflex
	`"`: '̈', // diaeresis
	"~": '̃', // tilde
	"=": '̄', // macron
	".": '̇', // dot above
	"u": '̆', // breve
	"v": '̌', // caron
	"H": '̋', // double acute
	"c": '̧', // cedilla
	"k": '̨', // ogonek
	"b": '̱', // macron below
	"d": '̣', // dot below
	"r": '̊', // ring above
	"t": '͡', // tie
}

// macros maps named commands to their Unicode expansions.
var macros = map[string]string{
	// special letters
	"ss": "ß", "SS": "SS",
	"ae": "æ", "AE": "Æ",
	"oe": "œ", "OE": "Œ",
	"aa": "å", "AA": "Å",
	"o": "ø", "O": "Ø",
	"l": "ł", "L": "Ł",
	"i": "ı", "j": "ȷ",
	"dh": "ð", "DH": "Ð",
	"th": "þ", "TH": "Þ",
	"dj": "đ", "DJ": "Đ",
	"ng": "ŋ", "NG": "Ŋ",

	// greek
	"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ",
	"epsilon": "ε", "varepsilon": "ε", "zeta": "ζ", "eta": "η",
	"theta": "θ", "vartheta": "ϑ", "iota": "ι", "kappa": "κ",
	"lambda": "λ", "mu": "μ", "nu": "ν", "xi": "ξ",
	"pi": "π", "varpi": "ϖ", "rho": "ρ", "varrho": "ϱ",
	"sigma": "σ", "varsigma": "ς", "tau": "τ", "upsilon": "υ",
	"phi": "φ", "varphi": "ϕ", "chi": "χ", "psi": "ψ", "omega": "ω",
	"Gamma": "Γ", "Delta": "Δ", "Theta": "Θ", "Lambda": "Λ",
	"Xi": "Ξ", "Pi": "Π", "Sigma": "Σ", "Upsilon": "Υ",
	"Phi": "Φ", "Psi": "Ψ", "Omega": "Ω",

	// punctuation and typography
	"dots": "…", "ldots": "…", "textellipsis": "…",
	"textendash": "–", "textemdash": "—",
	"textquotedblleft": "“", "textquotedblright": "”",
	"textquoteleft": "‘", "textquoteright": "’",
	"guillemotleft": "«", "guillemotright": "»",
	"dag": "†", "ddag": "‡", "dagger": "†", "ddagger": "‡",
	"S": "§", "P": "¶",
	"copyright": "©", "textregistered": "®", "texttrademark": "™",
	"pounds": "£", "textsterling": "£", "euro": "€", "texteuro": "€",
	"yen": "¥", "cent": "¢", "textcent": "¢",
	"textdegree": "°", "textmu": "µ", "textonehalf": "½",
	"textonequarter": "¼", "textthreequarters": "¾",
	"textbackslash": "\\", "textasciitilde": "~",
	"textasciicircum": "^", "textunderscore": "_",
	"textbar": "|", "textless": "<", "textgreater": ">",
	"nobreakspace": " ", "quad": " ",
	"qquad": "  ", "enspace": " ", "thinspace": " ",
	"TeX": "TeX", "LaTeX": "LaTeX",

	// math-adjacent symbols that show up outside math in titles
	"times": "×", "div": "÷", "pm": "±", "mp": "∓",
	"cdot": "·", "bullet": "•", "circ": "∘", "star": "⋆",
	"infty": "∞", "partial": "∂", "nabla": "∇",
	"leq": "≤", "le": "≤", "geq": "≥", "ge": "≥",
	"neq": "≠", "ne": "≠", "approx": "≈", "sim": "∼",
	"equiv": "≡", "propto": "∝", "ll": "≪", "gg": "≫",
	"forall": "∀", "exists": "∃", "in": "∈", "notin": "∉",
	"subset": "⊂", "supset": "⊃", "cup": "∪", "cap": "∩",
	"emptyset": "∅", "angle": "∠", "perp": "⊥", "parallel": "∥",
	"rightarrow": "→", "to": "→", "leftarrow": "←",
	"Rightarrow": "⇒", "Leftarrow": "⇐", "leftrightarrow": "↔",
	"sum": "∑", "prod": "∏", "int": "∫", "sqrt": "√",
	"prime": "′", "degree": "°",
}
