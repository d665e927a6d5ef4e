package schema

// Wire tags for the primitive kinds. These mirror the embedded table;
// a test keeps the two in sync. The gaps belong to kinds the table does
// not describe yet.
const (
	Circle            uint32 = 0
	Box               uint32 = 1
	Segment           uint32 = 2
	Triangle          uint32 = 3
	Bezier2           uint32 = 4
	Bezier3           uint32 = 5
	Ellipse           uint32 = 6
	Arc               uint32 = 7
	RoundedBox        uint32 = 8
	Rhombus           uint32 = 9
	Pentagon          uint32 = 10
	Hexagon           uint32 = 11
	Star              uint32 = 12
	Pie               uint32 = 13
	Ring              uint32 = 14
	Heart             uint32 = 15
	Cross             uint32 = 16
	RoundedX          uint32 = 17
	Capsule           uint32 = 18
	Moon              uint32 = 19
	Egg               uint32 = 20
	TextGlyph         uint32 = 64
	Sphere3D          uint32 = 100
	Box3D             uint32 = 101
	Torus3D           uint32 = 103
	Cylinder3D        uint32 = 105
	VerticalCapsule3D uint32 = 108
	CappedCone3D      uint32 = 110
	Octahedron3D      uint32 = 115
	Pyramid3D         uint32 = 116
	Ellipsoid3D       uint32 = 117
	Plot              uint32 = 128
	Image             uint32 = 129
)
