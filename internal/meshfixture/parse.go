package meshfixture

import (
	"fmt"

	"github.com/nellmills/contourtree/mesh"
)

// Parsed holds the result of parsing a fixture document.
type Parsed struct {
	Positions []mesh.Point3
	Faces     []mesh.Face
	Scalars   []float64
}

// Parse reads a fixture document (see package doc) and returns positions,
// faces, and a per-vertex scalar field.
func Parse(src string) (Parsed, error) {
	doc, err := fixtureParser.ParseString("", src)
	if err != nil {
		return Parsed{}, fmt.Errorf("meshfixture: %w", err)
	}

	var out Parsed
	for lineNo, st := range doc.Statements {
		switch st.Kind {
		case "V":
			if len(st.Values) != 3 && len(st.Values) != 4 {
				return Parsed{}, fmt.Errorf("meshfixture: line %d: V wants 3 or 4 values, got %d", lineNo+1, len(st.Values))
			}
			pos := mesh.Point3{X: st.Values[0], Y: st.Values[1], Z: st.Values[2]}
			scalar := pos.Z
			if len(st.Values) == 4 {
				scalar = st.Values[3]
			}
			out.Positions = append(out.Positions, pos)
			out.Scalars = append(out.Scalars, scalar)
		case "F":
			if len(st.Values) != 3 {
				return Parsed{}, fmt.Errorf("meshfixture: line %d: F wants 3 values, got %d", lineNo+1, len(st.Values))
			}
			out.Faces = append(out.Faces, mesh.Face{
				int(st.Values[0]), int(st.Values[1]), int(st.Values[2]),
			})
		default:
			return Parsed{}, fmt.Errorf("meshfixture: line %d: unknown statement %q", lineNo+1, st.Kind)
		}
	}

	return out, nil
}
