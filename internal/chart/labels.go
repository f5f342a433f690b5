package chart

// Role selects the colour an annotation is drawn with.
type Role int

const (
	RoleInductance Role = iota
	RoleCapacitance
)

// Align is the horizontal anchor of an annotation.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Annotation is a component value label placed in data coordinates.
type Annotation struct {
	X, Y  float64
	Text  string
	Role  Role
	Align Align
}

// Tick is an axis tick with its label.
type Tick struct {
	Value float64
	Label string
}

// Right edge labels indexed by impedance decade (x - ImpMinPow). They name the
// line that leaves the chart through the right edge next to the label.
var (
	rightInductance = [...]string{"1pH", "10pH", "100pH", "1nH", "10nH", "100nH",
		"1µH", "10µH", "100µH", ""}
	rightCapacitance = [...]string{"100nF", "10nF", "1nF", "100pF", "10pF", "1pF",
		"100fF", "10fF", "1fF", ""}
)

// Bottom and top edge labels indexed by frequency decade (x - FreqMinPow).
var (
	bottomInductance = [...]string{"10µH", "1µH", "100nH", "10nH", "1nH", "100pH",
		"10pH", "1pH", "", ""}
	bottomCapacitance = [...]string{"", "1F", "100mF", "10mF", "1mF", "100µF",
		"10µF", "1µF", "", ""}
	topInductance = [...]string{"", "", "100H", "10H", "1H", "100mH", "10mH",
		"1mH", "", ""}
	topCapacitance = [...]string{"", "1nF", "100pF", "10pF", "1pF", "100fF",
		"10fF", "1fF", "", ""}
)

var (
	frequencyTickLabels = [...]string{"10Hz", "100Hz", "1kHz", "10kHz", "100kHz",
		"1MHz", "10MHz", "100MHz", "1GHz"}
	impedanceTickLabels = [...]string{"10mΩ", "100mΩ", "1Ω", "10Ω", "100Ω", "1kΩ",
		"10kΩ", "100kΩ", "1MΩ"}
)

// Annotation anchor factors. Right edge labels sit just past the maximum
// frequency; bottom and top labels sit just outside the visible impedance
// window.
const (
	rightEdgeX   = 1.1
	rightInductY = 5.5
	rightCapY    = 1.4
	edgeInductX  = 3
	edgeCapX     = 0.8
	bottomEdgeY  = 1.3
	topEdgeY     = 2.4
)

// Annotations returns the component value labels. Empty table entries are
// skipped.
func Annotations() []Annotation {
	var out []Annotation
	add := func(a Annotation) {
		if a.Text != "" {
			out = append(out, a)
		}
	}

	for x := ImpMinPow; x < ImpMaxPow; x++ {
		i := x - ImpMinPow
		add(Annotation{
			X: rightEdgeX * pow10(FreqMaxPow), Y: rightInductY * pow10(x),
			Text: rightInductance[i], Role: RoleInductance, Align: AlignLeft,
		})
		add(Annotation{
			X: rightEdgeX * pow10(FreqMaxPow), Y: rightCapY * pow10(x),
			Text: rightCapacitance[i], Role: RoleCapacitance, Align: AlignLeft,
		})
	}

	bottom := bottomEdgeY * pow10(ImpMinPow)
	top := topEdgeY * pow10(ImpMaxPow-1)
	for x := FreqMinPow; x < FreqMaxPow; x++ {
		i := x - FreqMinPow
		add(Annotation{
			X: edgeInductX * pow10(x), Y: bottom,
			Text: bottomInductance[i], Role: RoleInductance, Align: AlignCenter,
		})
		add(Annotation{
			X: edgeCapX * pow10(x), Y: bottom,
			Text: bottomCapacitance[i], Role: RoleCapacitance, Align: AlignCenter,
		})
		add(Annotation{
			X: edgeInductX * pow10(x), Y: top,
			Text: topInductance[i], Role: RoleInductance, Align: AlignCenter,
		})
		add(Annotation{
			X: edgeCapX * pow10(x), Y: top,
			Text: topCapacitance[i], Role: RoleCapacitance, Align: AlignCenter,
		})
	}
	return out
}

// FrequencyTicks returns one tick per decade from 10^FreqMinPow to
// 10^FreqMaxPow.
func FrequencyTicks() []Tick {
	ticks := make([]Tick, 0, FreqMaxPow-FreqMinPow+1)
	for x := FreqMinPow; x <= FreqMaxPow; x++ {
		ticks = append(ticks, Tick{Value: pow10(x), Label: frequencyTickLabels[x-FreqMinPow]})
	}
	return ticks
}

// ImpedanceTicks returns one tick per decade strictly inside the impedance
// range; the end decades fall outside the visible window.
func ImpedanceTicks() []Tick {
	ticks := make([]Tick, 0, ImpMaxPow-ImpMinPow-1)
	for x := ImpMinPow + 1; x < ImpMaxPow; x++ {
		ticks = append(ticks, Tick{Value: pow10(x), Label: impedanceTickLabels[x-ImpMinPow-1]})
	}
	return ticks
}
