package cli

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"

	"saveworks/config"
	"saveworks/save"
	"saveworks/save/sworn"
	"saveworks/ui"
)

type (
	Args struct {
		Config      string          `arg:"--config,env:SAVEWORKS_CONFIG" default:"saveworks.ini" help:"path to the config file" placeholder:"FILE"`
		Decode      *DecodeCmd      `arg:"subcommand:decode" help:"decode a save into JSON"`
		Encode      *EncodeCmd      `arg:"subcommand:encode" help:"encode edited JSON back into a save"`
		Mutate      *MutateCmd      `arg:"subcommand:mutate" help:"apply quick edits to a save"`
		Watch       *WatchCmd       `arg:"subcommand:watch" help:"decode a save again every time the game writes it"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"browse a save in the terminal"`
	}
	DecodeCmd struct {
		Game    string `arg:"required" help:"cloverpit, megabonk or sworn" placeholder:"GAME"`
		From    string `arg:"required" help:"path to the save" placeholder:"SAVE"`
		To      string `arg:"required" help:"path to the JSON output" placeholder:"JSON"`
		Force   bool   `help:"overwrite the destination file"`
		Verbose bool   `help:"report Sworn segments the encoder would read differently"`
	}
	EncodeCmd struct {
		Game     string `arg:"required" help:"cloverpit, megabonk or sworn" placeholder:"GAME"`
		From     string `arg:"required" help:"path to the edited JSON" placeholder:"JSON"`
		To       string `help:"path to the output save [default: named after --original or --from]" placeholder:"SAVE"`
		Original string `help:"the save the JSON was decoded from, required for sworn" placeholder:"SAVE"`
		Force    bool   `help:"overwrite the destination file"`
	}
	MutateCmd struct {
		Game    string   `arg:"required" help:"cloverpit, megabonk or sworn" placeholder:"GAME"`
		From    string   `arg:"required" help:"path to the save" placeholder:"SAVE"`
		Presets []string `arg:"--preset,required,separate" help:"preset to apply, repeatable" placeholder:"PRESET"`
		To      string   `help:"path to the output save [default: named after --from]" placeholder:"SAVE"`
		Force   bool     `help:"overwrite the destination file"`
	}
	WatchCmd struct {
		Game string `arg:"required" help:"cloverpit, megabonk or sworn" placeholder:"GAME"`
		File string `arg:"required" help:"path to the save to watch" placeholder:"SAVE"`
		To   string `arg:"required" help:"path to the JSON output, rewritten on every change" placeholder:"JSON"`
	}
	InteractiveCmd struct {
		Game string `arg:"required" help:"cloverpit, megabonk or sworn" placeholder:"GAME"`
		From string `arg:"required" help:"path to the save" placeholder:"SAVE"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Save editing for Cloverpit, Megabonk and Sworn.\n",
			"Decode a save to JSON, edit it, and encode it back. Everything you did not",
			"edit is written back exactly as the game left it.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func checkDestination(to string, force bool) error {
	if CheckExistence(to) && !force {
		return errors.Errorf(
			"Destination file %s existed. Please type the command again with --force to allow overwriting!\n"+
				"Explicit --force is needed to make sure that you paid attention not to overwriting the actual save in your folder.",
			to,
		)
	}
	return nil
}

func readSource(from string) ([]byte, error) {
	if !CheckExistence(from) {
		return nil, errors.Errorf("Source file %s does not exist!", from)
	}
	bs, err := ioutil.ReadFile(from)
	if err != nil {
		return nil, errors.Wrapf(err, "Error happened reading file %s", from)
	}
	return bs, nil
}

func writeOutput(to string, bs []byte) error {
	if err := ioutil.WriteFile(to, bs, 0644); err != nil {
		return errors.Wrapf(err, "Error happened writing to file at: %s", to)
	}
	return nil
}

// describeError adds advice about the usual causes to a FormatError.
func describeError(game save.Game, err error) error {
	if save.IsFormatError(err) {
		return errors.Wrapf(
			err,
			"%s save rejected, check --game and the password/key in the config file",
			game,
		)
	}
	return err
}

func StartDecoding(cmd DecodeCmd, opts save.Options) error {
	game, err := save.ParseGame(cmd.Game)
	if err != nil {
		return err
	}
	bs, err := readSource(cmd.From)
	if err != nil {
		return err
	}
	if err := checkDestination(cmd.To, cmd.Force); err != nil {
		return err
	}

	jsonBytes, err := save.DecodeSave(game, bs, opts)
	if err != nil {
		return describeError(game, err)
	}
	if cmd.Verbose && game == save.GameSworn {
		for _, mismatch := range sworn.CompareScans(bs) {
			log.Printf(
				"warning: segment #%d %q: decoded value %s, located=%v value %s",
				mismatch.Index, mismatch.Text,
				formatOptional(mismatch.DecodedValue), mismatch.Located, formatOptional(mismatch.LocatedValue),
			)
		}
	}
	if err := writeOutput(cmd.To, jsonBytes); err != nil {
		return err
	}
	println("Done decoding. Please check your result file at: " + cmd.To)
	return nil
}

func formatOptional(value *int64) string {
	if value == nil {
		return "null"
	}
	return fmt.Sprint(*value)
}

func defaultDestination(game save.Game, to string, from string) string {
	if to != "" {
		return to
	}
	return filepath.Join(filepath.Dir(from), save.OutputFileName(game, filepath.Base(from)))
}

func StartEncoding(cmd EncodeCmd, opts save.Options) error {
	game, err := save.ParseGame(cmd.Game)
	if err != nil {
		return err
	}
	jsonBytes, err := readSource(cmd.From)
	if err != nil {
		return err
	}
	var original []byte
	if cmd.Original != "" {
		original, err = readSource(cmd.Original)
		if err != nil {
			return err
		}
	}

	base := cmd.From
	if cmd.Original != "" {
		base = cmd.Original
	}
	to := defaultDestination(game, cmd.To, base)
	if filepath.Clean(to) == filepath.Clean(cmd.From) {
		return errors.Errorf(
			"Destination file %s is the JSON input itself. Please type the command again with --to or --original to choose where the encoded save goes!",
			to,
		)
	}
	if err := checkDestination(to, cmd.Force); err != nil {
		return err
	}

	bs, err := save.EncodeSave(game, jsonBytes, original, opts)
	if err != nil {
		return describeError(game, err)
	}
	if err := writeOutput(to, bs); err != nil {
		return err
	}
	println("Done encoding. Please check your result file at: " + to)
	return nil
}

func StartMutating(cmd MutateCmd, opts save.Options) error {
	game, err := save.ParseGame(cmd.Game)
	if err != nil {
		return err
	}
	bs, err := readSource(cmd.From)
	if err != nil {
		return err
	}
	to := defaultDestination(game, cmd.To, cmd.From)
	if err := checkDestination(to, cmd.Force); err != nil {
		return err
	}

	mutated, err := save.MutateSave(game, bs, cmd.Presets, opts)
	if errors.Is(err, save.ErrUnknownPreset) {
		return errors.Errorf("%v\nAvailable presets: %s", err, strings.Join(save.Presets(game), ", "))
	}
	if err != nil {
		return describeError(game, err)
	}
	if err := writeOutput(to, mutated); err != nil {
		return err
	}
	println("Done applying " + strings.Join(cmd.Presets, ", ") + ". Please check your result file at: " + to)
	return nil
}

func StartInteractive(cmd InteractiveCmd, opts save.Options) error {
	game, err := save.ParseGame(cmd.Game)
	if err != nil {
		return err
	}
	bs, err := readSource(cmd.From)
	if err != nil {
		return err
	}
	model, err := save.Decode(game, bs, opts)
	if err != nil {
		return describeError(game, err)
	}
	rows, err := ui.RowsFromModel(model)
	if err != nil {
		return err
	}
	return ui.Start(fmt.Sprintf("%s: %s", game, filepath.Base(cmd.From)), rows)
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)

	cfg, err := config.Load(args.Config)
	if err != nil {
		log.Fatal(err)
	}
	opts := cfg.SaveOptions()

	switch {
	case args.Decode != nil:
		err = StartDecoding(*args.Decode, opts)
	case args.Encode != nil:
		err = StartEncoding(*args.Encode, opts)
	case args.Mutate != nil:
		err = StartMutating(*args.Mutate, opts)
	case args.Watch != nil:
		err = StartWatching(*args.Watch, opts, cfg.Debounce)
	case args.Interactive != nil:
		err = StartInteractive(*args.Interactive, opts)
	default:
		parser.WriteHelp(os.Stdout)
		return
	}

	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
}
