package symbols

// Operators maps binary and large operator commands to their glyphs.
var Operators = Table{
	"pm":        "±",
	"mp":        "∓",
	"times":     "×",
	"div":       "÷",
	"cdot":      "·",
	"ast":       "∗",
	"star":      "⋆",
	"circ":      "∘",
	"bullet":    "•",
	"oplus":     "⊕",
	"ominus":    "⊖",
	"otimes":    "⊗",
	"oslash":    "⊘",
	"odot":      "⊙",
	"cup":       "∪",
	"cap":       "∩",
	"setminus":  "∖",
	"wedge":     "∧",
	"vee":       "∨",
	"sum":       "∑",
	"prod":      "∏",
	"coprod":    "∐",
	"int":       "∫",
	"iint":      "∬",
	"iiint":     "∭",
	"oint":      "∮",
	"bigcup":    "⋃",
	"bigcap":    "⋂",
	"bigoplus":  "⨁",
	"bigotimes": "⨂",
	"bigvee":    "⋁",
	"bigwedge":  "⋀",
	"sqrt":      "√",
	"sqcup":     "⊔",
	"sqcap":     "⊓",
	"dagger":    "†",
	"ddagger":   "‡",
	"amalg":     "⨿",
}

// Relations maps relation commands to their glyphs.
var Relations = Table{
	"leq":       "≤",
	"le":        "≤",
	"geq":       "≥",
	"ge":        "≥",
	"neq":       "≠",
	"ne":        "≠",
	"equiv":     "≡",
	"sim":       "∼",
	"simeq":     "≃",
	"approx":    "≈",
	"cong":      "≅",
	"propto":    "∝",
	"ll":        "≪",
	"gg":        "≫",
	"prec":      "≺",
	"succ":      "≻",
	"preceq":    "⪯",
	"succeq":    "⪰",
	"subset":    "⊂",
	"supset":    "⊃",
	"subseteq":  "⊆",
	"supseteq":  "⊇",
	"sqsubset":  "⊏",
	"sqsupset":  "⊐",
	"in":        "∈",
	"ni":        "∋",
	"notin":     "∉",
	"models":    "⊨",
	"vdash":     "⊢",
	"dashv":     "⊣",
	"perp":      "⊥",
	"parallel":  "∥",
	"mid":       "∣",
	"asymp":     "≍",
	"doteq":     "≐",
	"triangleq": "≜",
}

// Arrows maps arrow commands to their glyphs.
var Arrows = Table{
	"to":                  "→",
	"gets":                "←",
	"rightarrow":          "→",
	"leftarrow":           "←",
	"leftrightarrow":      "↔",
	"Rightarrow":          "⇒",
	"Leftarrow":           "⇐",
	"Leftrightarrow":      "⇔",
	"uparrow":             "↑",
	"downarrow":           "↓",
	"updownarrow":         "↕",
	"mapsto":              "↦",
	"longrightarrow":      "⟶",
	"longleftarrow":       "⟵",
	"longmapsto":          "⟼",
	"Longrightarrow":      "⟹",
	"Longleftarrow":       "⟸",
	"Longleftrightarrow":  "⟺",
	"hookrightarrow":      "↪",
	"hookleftarrow":       "↩",
	"rightharpoonup":      "⇀",
	"leftharpoonup":       "↼",
	"rightleftharpoons":   "⇌",
	"nearrow":             "↗",
	"searrow":             "↘",
	"swarrow":             "↙",
	"nwarrow":             "↖",
	"implies":             "⟹",
	"impliedby":           "⟸",
	"iff":                 "⟺",
	"rightsquigarrow":     "⇝",
	"leftrightsquigarrow": "↭",
}

// Delimiters maps delimiter commands to their glyphs.
var Delimiters = Table{
	"langle": "⟨",
	"rangle": "⟩",
	"lvert":  "|",
	"rvert":  "|",
	"lVert":  "‖",
	"rVert":  "‖",
	"lceil":  "⌈",
	"rceil":  "⌉",
	"lfloor": "⌊",
	"rfloor": "⌋",
	"|":      "‖",
	"{":      "{",
	"}":      "}",
	"\\":     "\n",
}

// Misc maps miscellaneous symbol commands to their glyphs.
var Misc = Table{
	"infty":         "∞",
	"partial":       "∂",
	"nabla":         "∇",
	"forall":        "∀",
	"exists":        "∃",
	"nexists":       "∄",
	"emptyset":      "∅",
	"varnothing":    "∅",
	"neg":           "¬",
	"lnot":          "¬",
	"angle":         "∠",
	"measuredangle": "∡",
	"triangle":      "△",
	"square":        "□",
	"blacksquare":   "■",
	"diamond":       "⋄",
	"Diamond":       "◊",
	"aleph":         "ℵ",
	"beth":          "ℶ",
	"hbar":          "ℏ",
	"ell":           "ℓ",
	"wp":            "℘",
	"Re":            "ℜ",
	"Im":            "ℑ",
	"imath":         "ı",
	"jmath":         "ȷ",
	"prime":         "′",
	"degree":        "°",
	"circledR":      "®",
	"checkmark":     "✓",
	"dots":          "…",
	"ldots":         "…",
	"cdots":         "⋯",
	"vdots":         "⋮",
	"ddots":         "⋱",
	"therefore":     "∴",
	"because":       "∵",
	"qed":           "∎",
	"top":           "⊤",
	"bot":           "⊥",
	"flat":          "♭",
	"natural":       "♮",
	"sharp":         "♯",
	"clubsuit":      "♣",
	"diamondsuit":   "♢",
	"heartsuit":     "♡",
	"spadesuit":     "♠",
	"pounds":        "£",
	"S":             "§",
	"P":             "¶",
	"copyright":     "©",
	"quad":          " ",
	"qquad":         "  ",
	",":             " ",
	";":             " ",
	":":             " ",
	"!":             "",
}
