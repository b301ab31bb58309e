package rootfind

// WidenFunc returns the bracket to use after the given failed attempt.
type WidenFunc func(b Bracket, attempt int) Bracket

// KeepUpper keeps the upper end fixed and multiplies the width by factor.
// Suited to functions with a singularity just above Hi.
func KeepUpper(factor float64) WidenFunc {
	return func(b Bracket, _ int) Bracket {
		return Bracket{Lo: b.Hi - b.Width()*factor, Hi: b.Hi}
	}
}

// Expand multiplies the width by factor around the midpoint.
func Expand(factor float64) WidenFunc {
	return func(b Bracket, _ int) Bracket {
		mid := 0.5 * (b.Lo + b.Hi)
		half := 0.5 * b.Width() * factor

		return Bracket{Lo: mid - half, Hi: mid + half}
	}
}
