package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parsec/input"
	"github.com/dhamidi/parsec/parse"
	"github.com/dhamidi/parsec/text"
)

type rgb struct {
	R, G, B uint8
}

var rgbColor = func() parse.Parser[rune, rgb] {
	comma := text.Lexeme(text.Char(','))
	channel := text.Lexeme(parse.Label(text.Unsigned[uint8](), "channel"))
	open := text.Lexeme(text.String("rgb("))
	return parse.Between(
		open,
		parse.Map3(
			parse.Skip(channel, comma),
			parse.Skip(channel, comma),
			channel,
			func(r, g, b uint8) rgb { return rgb{r, g, b} },
		),
		text.Lexeme(text.Char(')')),
	)
}()

func parseColor(s string) (rgb, error) {
	c, err := parse.Run(rgbColor, input.NewString(strings.TrimSpace(s)))
	if err != nil {
		return rgb{}, fmt.Errorf("parse color: %w", err)
	}
	return c, nil
}

func newColorCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "color <rgb(r, g, b)>...",
		Short:         "Parse an rgb() color and print its channels",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColor(strings.Join(args, " "))
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %d %d\n", c.R, c.G, c.B)
			return nil
		},
	}
}
