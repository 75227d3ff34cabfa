package htmltree

import (
	"fmt"

	g "maragu.dev/gomponents"
)

// ToGomponents converts a node fragment into a gomponents node, for
// codebases that already render through that ecosystem. Text maps to
// gomponents Text (escaped on render there too), Raw to gomponents
// Raw, boolean attributes to bare attributes, and list attributes to
// their space-joined form. Absent attribute values are dropped.
func ToGomponents(nodes ...Node) (g.Node, error) {
	if len(nodes) == 1 {
		return toGomponent(nodes[0])
	}
	group := make(g.Group, 0, len(nodes))
	for _, n := range nodes {
		gn, err := toGomponent(n)
		if err != nil {
			return nil, err
		}
		group = append(group, gn)
	}
	return group, nil
}

func toGomponent(n Node) (g.Node, error) {
	switch t := n.(type) {
	case Text:
		return g.Text(string(t)), nil
	case Raw:
		return g.Raw(string(t)), nil
	case *Element:
		args := make([]g.Node, 0, len(t.Attrs)+len(t.Content))
		for _, name := range t.attrNames() {
			value := t.Attrs[name]
			switch {
			case value.IsAbsent():
				// dropped, same as the renderer
			case value.String() == "":
				// boolean attributes and empty lists render bare
				args = append(args, g.Attr(name))
			default:
				args = append(args, g.Attr(name, value.String()))
			}
		}
		for _, child := range t.Content {
			gn, err := toGomponent(child)
			if err != nil {
				return nil, err
			}
			args = append(args, gn)
		}
		return g.El(t.Tag, args...), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrRenderNode, n)
	}
}
