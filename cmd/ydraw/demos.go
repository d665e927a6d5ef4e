package main

var demos = map[string]string{
	"2d": `# 2D primitives
- body:
    - circle:
        position: [100, 80]
        radius: 35
        fill: "#e74c3c"
        stroke: "#c0392b"
        stroke-width: 2

    - box:
        position: [200, 80]
        size: [40, 30]
        fill: "#3498db"
        round: 8

    - triangle:
        p0: [300, 50]
        p1: [340, 110]
        p2: [260, 110]
        fill: "#2ecc71"

    - ellipse:
        position: [100, 160]
        radii: [40, 25]
        fill: "#9b59b6"

    - star:
        position: [200, 160]
        radius: 30
        points: 5
        fill: "#f1c40f"

    - segment:
        from: [150, 220]
        to: [350, 220]
        stroke: "#34495e"
        stroke-width: 3
`,

	"3d": `# Raymarched 3D primitives
- body:
    - sphere:
        position: [-0.6, 0.3, 0]
        radius: 0.2
        fill: "#e74c3c"

    - box3d:
        position: [0, 0.3, 0]
        size: [0.18, 0.18, 0.18]
        fill: "#3498db"

    - torus:
        position: [0.6, 0.3, 0]
        major-radius: 0.18
        minor-radius: 0.06
        fill: "#2ecc71"

    - cylinder:
        position: [-0.6, -0.3, 0]
        radius: 0.12
        height: 0.25
        fill: "#9b59b6"

    - capsule3d:
        position: [0, -0.3, 0]
        radius: 0.08
        height: 0.25
        fill: "#f39c12"

    - cone:
        position: [0.6, -0.3, 0]
        radius1: 0.15
        radius2: 0.0
        height: 0.25
        fill: "#1abc9c"
`,

	"mixed": `# 3D scene with 2D overlays
- body:
    - sphere:
        position: [0, 0, 0]
        radius: 0.25
        fill: "#e74c3c"

    - torus:
        position: [0, 0, 0.3]
        major-radius: 0.4
        minor-radius: 0.08
        fill: "#3498db"

    - circle:
        position: [40, 30]
        radius: 15
        fill: "#e74c3c"
        stroke: "#fff"
        stroke-width: 2

    - circle:
        position: [70, 30]
        radius: 15
        fill: "#3498db"
        stroke: "#fff"
        stroke-width: 2

    - segment:
        from: [20, 55]
        to: [130, 55]
        stroke: "#7f8c8d"
        stroke-width: 2
`,
}
