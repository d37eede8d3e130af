package expand

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/command"
	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/urllist"
)

func action(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.Setup(cmd)
	if err != nil {
		return err
	}

	lines := cmd.Args().Slice()
	if len(lines) == 0 {
		if lines, err = urllist.Read(cfg.Input.File); err != nil {
			return err
		}
	}

	return Print(cmd.Root().Writer, lines)
}

// Print 把 lines 的展开结果逐行写入 w。
func Print(w io.Writer, lines []string) error {
	for _, e := range urllist.Expand(lines) {
		if len(e.Expanded) == 0 {
			slog.Warn("Range expands to nothing", "line", e.Line)
		}
		for _, u := range e.Expanded {
			if _, err := fmt.Fprintln(w, u); err != nil {
				return err
			}
		}
	}

	return nil
}
