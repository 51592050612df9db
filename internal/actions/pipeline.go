package actions

import (
	"context"
	"fmt"

	"github.com/nexuslink/nlink/internal/domain"
	"github.com/nexuslink/nlink/internal/params"
	"github.com/nexuslink/nlink/internal/router"
	"github.com/nexuslink/nlink/internal/status"
)

func PipelineCommand(d Dependencies) router.Command {
	return router.Command{
		Name:        "pipeline",
		Description: "Manage processing pipelines",
		Help: "Usage: pipeline NAME [SUBCOMMAND [ARGUMENT]]\n\n" +
			"Subcommands:\n" +
			"  show                 Show the stages (default)\n" +
			"  create               Create an empty pipeline\n" +
			"  add-stage STAGE      Append a stage\n" +
			"  remove-stage STAGE   Remove the first matching stage\n" +
			"  execute              Run the stages in order\n" +
			"  delete               Delete the pipeline",
		Category: "pipelines",
		Handler:  pipelineHandler(d),
	}
}

func pipelineHandler(d Dependencies) router.Handler {
	return func(ctx context.Context, p *params.Params) error {
		name, ok := p.Get("component")
		if !ok || name == "" {
			return status.InvalidParameter("pipeline requires a name")
		}
		sub := p.Value("subcommand", "show")
		arg := p.Value("argument", "")

		switch sub {
		case "show":
			pl, err := d.Store.GetPipeline(name)
			if err != nil {
				return storeError(err, "get pipeline %s", name)
			}
			d.printPipeline(pl)
			return nil

		case "create":
			pl, err := d.Store.CreatePipeline(name)
			if err != nil {
				return storeError(err, "create pipeline %s", name)
			}
			fmt.Fprintln(d.Out, d.styler().Success(fmt.Sprintf("Created pipeline '%s'", pl.Name)))
			return nil

		case "add-stage":
			if arg == "" {
				return status.InvalidParameter("add-stage requires a stage name")
			}
			pl, err := d.Store.AddStage(name, arg)
			if err != nil {
				return storeError(err, "add stage to %s", name)
			}
			fmt.Fprintf(d.Out, "Added stage '%s' to pipeline '%s' (%d stages)\n", arg, pl.Name, len(pl.Stages))
			return nil

		case "remove-stage":
			if arg == "" {
				return status.InvalidParameter("remove-stage requires a stage name")
			}
			pl, err := d.Store.RemoveStage(name, arg)
			if err != nil {
				return storeError(err, "remove stage from %s", name)
			}
			fmt.Fprintf(d.Out, "Removed stage '%s' from pipeline '%s' (%d stages)\n", arg, pl.Name, len(pl.Stages))
			return nil

		case "execute":
			pl, err := d.Store.GetPipeline(name)
			if err != nil {
				return storeError(err, "get pipeline %s", name)
			}
			return d.executePipeline(ctx, pl)

		case "delete":
			if err := d.Store.DeletePipeline(name); err != nil {
				return storeError(err, "delete pipeline %s", name)
			}
			fmt.Fprintf(d.Out, "Deleted pipeline '%s'\n", name)
			return nil

		default:
			return status.InvalidParameter("unknown pipeline subcommand: %s", sub)
		}
	}
}

func (d Dependencies) printPipeline(pl domain.Pipeline) {
	s := d.styler()
	fmt.Fprintln(d.Out, s.Header(fmt.Sprintf("Pipeline '%s'", pl.Name)))
	if len(pl.Stages) == 0 {
		fmt.Fprintln(d.Out, s.Muted("  (no stages)"))
		return
	}
	for i, stage := range pl.Stages {
		fmt.Fprintf(d.Out, "  %d. %s\n", i+1, stage)
	}
}

func (d Dependencies) executePipeline(ctx context.Context, pl domain.Pipeline) error {
	if len(pl.Stages) == 0 {
		return status.InvalidParameter("pipeline '%s' has no stages", pl.Name)
	}

	s := d.styler()
	fmt.Fprintf(d.Out, "Executing pipeline '%s' (%d stages)\n", pl.Name, len(pl.Stages))
	for i, stage := range pl.Stages {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(d.Out, "  [%d/%d] %s %s\n", i+1, len(pl.Stages), stage, s.Success("done"))
		d.logger().Debug("pipeline %s: stage %d %s", pl.Name, i+1, stage)
	}
	fmt.Fprintln(d.Out, s.Success(fmt.Sprintf("Pipeline '%s' completed", pl.Name)))
	return nil
}
