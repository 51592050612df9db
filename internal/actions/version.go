package actions

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nexuslink/nlink/internal/params"
	"github.com/nexuslink/nlink/internal/router"
	"github.com/nexuslink/nlink/internal/status"
)

const copyright = "© OBINexus Computing"

func VersionCommand(d Dependencies) router.Command {
	return router.Command{
		Name:        "version",
		ShortName:   "v",
		Description: "Show version information",
		Help: "Usage: version [detailed|json]\n\n" +
			"  detailed   Include component versions and the components loaded this session\n" +
			"  json       Print the same information as JSON",
		Category: "general",
		Handler:  versionHandler(d),
	}
}

type versionInfo struct {
	Name       string            `json:"name"`
	Version    string            `json:"version"`
	Copyright  string            `json:"copyright"`
	Session    string            `json:"session"`
	Components map[string]string `json:"components"`
	Loaded     []string          `json:"loaded"`
}

func versionHandler(d Dependencies) router.Handler {
	return func(_ context.Context, p *params.Params) error {
		format, _ := p.Get("format")

		switch format {
		case "":
			fmt.Fprintf(d.Out, "%s version %s\n", d.Program, d.Version)
			return nil
		case "detailed", "json":
		default:
			return status.InvalidParameter("unknown version format: %s", format)
		}

		info, err := d.versionInfo()
		if err != nil {
			return err
		}

		if format == "json" {
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return status.Failure("encode version: %v", err)
			}
			fmt.Fprintln(d.Out, string(data))
			return nil
		}

		s := d.styler()
		fmt.Fprintf(d.Out, "%s version %s\n%s\n", d.Program, d.Version, copyright)
		fmt.Fprintf(d.Out, "\n%s\n", s.Header("Components:"))
		components, _ := d.Store.ListComponents("")
		for _, c := range latestVersions(components) {
			fmt.Fprintf(d.Out, "  %-12s v%s\n", c.Name, c.Version)
		}
		fmt.Fprintf(d.Out, "\n%s\n", s.Header("Loaded this session:"))
		if len(info.Loaded) == 0 {
			fmt.Fprintln(d.Out, s.Muted("  (no components loaded)"))
		}
		for _, l := range info.Loaded {
			fmt.Fprintf(d.Out, "  %s\n", l)
		}
		return nil
	}
}

func (d Dependencies) versionInfo() (versionInfo, error) {
	info := versionInfo{
		Name:       d.Program,
		Version:    d.Version,
		Copyright:  copyright,
		Session:    d.SessionID,
		Components: map[string]string{},
		Loaded:     []string{},
	}

	components, err := d.Store.ListComponents("")
	if err != nil {
		return info, status.IOError(err, "list components")
	}
	for _, c := range latestVersions(components) {
		info.Components[c.Name] = c.Version
	}

	loads, err := d.Store.ListLoads(d.SessionID)
	if err != nil {
		return info, status.IOError(err, "list loads")
	}
	for _, l := range loads {
		info.Loaded = append(info.Loaded, l.Component+"@"+l.Version)
	}
	return info, nil
}
