package actions

import (
	"context"
	"fmt"

	"github.com/nexuslink/nlink/internal/domain"
	"github.com/nexuslink/nlink/internal/params"
	"github.com/nexuslink/nlink/internal/router"
	"github.com/nexuslink/nlink/internal/status"
)

func ConfigCommand(d Dependencies) router.Command {
	return router.Command{
		Name:        "config",
		Description: "Show or change settings",
		Help: "Usage: config [get KEY | set KEY VALUE | unset KEY]\n\n" +
			"Without arguments, lists every setting. Settings live in ~/.nlinkrc;\n" +
			"most take effect the next time nlink starts.",
		Category: "general",
		Handler:  configHandler(d),
	}
}

func configHandler(d Dependencies) router.Handler {
	return func(_ context.Context, p *params.Params) error {
		if d.Config == nil {
			return status.NotInitialized("configuration")
		}

		sub, ok := p.Get("subcommand")
		if !ok {
			return d.listConfig()
		}

		key := p.Value("key", "")
		if !domain.IsValidConfigKey(key) {
			return status.InvalidParameter("unknown setting: %s", key)
		}

		switch sub {
		case "get":
			value, _ := d.Config.Get(key)
			fmt.Fprintln(d.Out, value)
			return nil

		case "set":
			value, ok := p.Get("value")
			if !ok {
				return status.InvalidParameter("config set requires a value")
			}
			if err := d.Config.Set(key, value); err != nil {
				return status.IOError(err, "set %s", key)
			}
			d.logger().Info("config: %s=%s", key, value)
			fmt.Fprintf(d.Out, "%s=%s\n", key, value)
			return nil

		case "unset":
			if err := d.Config.Unset(key); err != nil {
				return status.IOError(err, "unset %s", key)
			}
			d.logger().Info("config: unset %s", key)
			fmt.Fprintf(d.Out, "unset %s\n", key)
			return nil

		default:
			return status.InvalidParameter("unknown config subcommand: %s", sub)
		}
	}
}

func (d Dependencies) listConfig() error {
	values, err := d.Config.GetAll()
	if err != nil {
		return status.IOError(err, "read settings")
	}

	s := d.styler()
	section := ""
	for _, key := range domain.ConfigKeys {
		value := values[key.Name]
		if key.HideIfEmpty && value == "" {
			continue
		}
		if key.Section != section {
			if section != "" {
				fmt.Fprintln(d.Out)
			}
			section = key.Section
			fmt.Fprintln(d.Out, s.Header(section))
		}
		fmt.Fprintf(d.Out, "  %s=%s\n", key.Name, value)
	}
	return nil
}
