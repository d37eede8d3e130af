package cfg

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/command"
	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/config"
	"github.com/lwmacct/251207-go-pkg-bulkdl/pkg/cfgm"
)

func exampleAction(_ context.Context, cmd *cli.Command) error {
	out, err := cfgm.ExampleYAML(config.DefaultConfig())
	if err != nil {
		return err
	}

	_, err = cmd.Root().Writer.Write(out)

	return err
}

func showAction(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return err
	}

	out, err := cfgm.MarshalJSON(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, string(out))

	return err
}
