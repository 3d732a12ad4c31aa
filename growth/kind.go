package growth

// Kind is the role of a branch. It selects direction bias, glyph table and color
type Kind uint8

const (
	Trunk Kind = iota
	ShootLeft
	ShootRight
	Dying
	Dead
	kindCount
)

var kindNames = [kindCount]string{
	Trunk:      "trunk",
	ShootLeft:  "shoot-left",
	ShootRight: "shoot-right",
	Dying:      "dying",
	Dead:       "dead",
}

func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Shoot reports whether k is a left or right shoot
func (k Kind) Shoot() bool {
	return k == ShootLeft || k == ShootRight
}

// shootKind alternates shoot direction on the parity of the running shoot counter
func shootKind(counter int) Kind {
	if counter%2 == 0 {
		return ShootLeft
	}
	return ShootRight
}
