package actions

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nexuslink/nlink/internal/params"
	"github.com/nexuslink/nlink/internal/router"
	"github.com/nexuslink/nlink/internal/status"
)

const (
	minLevel     = 1
	maxLevel     = 3
	defaultLevel = 2
)

var levelNames = map[int]string{
	1: "basic",
	2: "standard",
	3: "aggressive",
}

func MinimizeCommand(d Dependencies) router.Command {
	return router.Command{
		Name:        "minimize",
		Description: "Plan the minimization of a component",
		Help: "Usage: minimize COMPONENT [level 1-3] [with|without boolean] [output PATH]\n\n" +
			"Level defaults to 2. Boolean reduction defaults to on at level 3 and off below.",
		Category: "components",
		Handler:  minimizeHandler(d),
	}
}

func minimizeHandler(d Dependencies) router.Handler {
	return func(_ context.Context, p *params.Params) error {
		component, ok := p.Get("component")
		if !ok || component == "" {
			return status.InvalidParameter("minimize requires a component")
		}

		level := defaultLevel
		if raw, ok := p.Get("level"); ok {
			n, err := strconv.Atoi(raw)
			if err != nil || n < minLevel || n > maxLevel {
				return status.InvalidParameter("invalid minimization level %q (expected %d-%d)", raw, minLevel, maxLevel)
			}
			level = n
		}

		boolean := level == maxLevel
		if opt, ok := p.Get("boolean_option"); ok {
			switch opt {
			case "with":
				boolean = true
			case "without":
				boolean = false
			default:
				return status.InvalidParameter("invalid boolean option %q (expected with or without)", opt)
			}
		}

		s := d.styler()
		fmt.Fprintf(d.Out, "Minimizing component: %s\n", component)
		fmt.Fprintf(d.Out, "Minimization level: %d (%s)\n", level, levelNames[level])
		if boolean {
			fmt.Fprintf(d.Out, "Boolean reduction: %s\n", s.Success("enabled"))
		} else {
			fmt.Fprintf(d.Out, "Boolean reduction: %s\n", s.Muted("disabled"))
		}
		if output, ok := p.Get("output"); ok && output != "" {
			fmt.Fprintf(d.Out, "Saving minimized component to: %s\n", output)
		}

		d.logger().Info("minimize plan for %s: level %d, boolean %t", component, level, boolean)
		return nil
	}
}
