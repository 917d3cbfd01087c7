package benefit

// Style captures the presentation policy for a benefit status: icon accent,
// card gradient, and badge classes. It is pure lookup data so the data layer
// never branches on presentation concerns.
type Style struct {
	IconClass  string `json:"icon_class"`
	Gradient   string `json:"gradient"`
	BadgeClass string `json:"badge_class"`
	Label      string `json:"label"`
}

var styles = map[Status]Style{
	StatusActive: {
		IconClass:  "text-emerald-500",
		Gradient:   "from-emerald-500 to-teal-500",
		BadgeClass: "bg-emerald-100 text-emerald-700",
		Label:      "Active",
	},
	StatusPremium: {
		IconClass:  "text-violet-500",
		Gradient:   "from-violet-500 to-purple-600",
		BadgeClass: "bg-violet-100 text-violet-700",
		Label:      "Premium",
	},
	StatusLimited: {
		IconClass:  "text-amber-500",
		Gradient:   "from-amber-500 to-orange-500",
		BadgeClass: "bg-amber-100 text-amber-700",
		Label:      "Limited Time",
	},
	StatusNew: {
		IconClass:  "text-sky-500",
		Gradient:   "from-sky-500 to-blue-600",
		BadgeClass: "bg-sky-100 text-sky-700",
		Label:      "New",
	},
	StatusHealth: {
		IconClass:  "text-rose-500",
		Gradient:   "from-rose-500 to-pink-600",
		BadgeClass: "bg-rose-100 text-rose-700",
		Label:      "Health",
	},
}

// defaultStyle is used for statuses without a dedicated entry.
var defaultStyle = Style{
	IconClass:  "text-slate-500",
	Gradient:   "from-slate-500 to-slate-600",
	BadgeClass: "bg-slate-100 text-slate-700",
	Label:      "Benefit",
}

// StyleFor returns the presentation style for a status, falling back to a
// neutral style for unknown values.
func StyleFor(status Status) Style {
	if s, ok := styles[status]; ok {
		return s
	}
	return defaultStyle
}
