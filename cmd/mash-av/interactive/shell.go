// Package interactive provides the interactive shell for editing an audio
// model and inspecting its encodings.
package interactive

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/mash-protocol/mash-av/pkg/log"
	"github.com/mash-protocol/mash-av/pkg/model"
	"github.com/mash-protocol/mash-av/pkg/persistence"
	"github.com/mash-protocol/mash-av/pkg/wire"
)

// Shell handles interactive mode for mash-av.
type Shell struct {
	audio     *model.Audio
	logger    log.Logger
	sessionID string

	out io.Writer
	rl  *readline.Instance
}

// New creates a shell reading from the terminal.
func New(a *model.Audio, logger log.Logger, sessionID string) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "audio> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	s := NewWithWriter(a, logger, sessionID, rl.Stdout())
	s.rl = rl
	return s, nil
}

// NewWithWriter creates a shell without a terminal. Commands are fed to
// Execute and their output goes to out.
func NewWithWriter(a *model.Audio, logger log.Logger, sessionID string, out io.Writer) *Shell {
	if logger == nil {
		logger = log.NoopLogger{}
	}
	return &Shell{
		audio:     a,
		logger:    logger,
		sessionID: sessionID,
		out:       out,
	}
}

// Run starts the interactive command loop. It returns when the user quits,
// input ends or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) {
	if s.rl == nil {
		return
	}
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			return
		}

		if s.Execute(line) {
			return
		}
	}
}

// Execute runs one command line and returns true if the shell should exit.
func (s *Shell) Execute(line string) (quit bool) {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "show", "s":
		fmt.Fprintln(s.out, s.audio)

	case "mute":
		s.cmdMute(args)

	case "volume", "vol":
		s.cmdVolume(args)

	case "name":
		s.audio.Name = strings.Join(args, " ")
		fmt.Fprintln(s.out, "OK")

	case "uri":
		s.cmdURI(args)

	case "rep":
		s.cmdRep()

	case "parcel":
		fmt.Fprintln(s.out, hex.EncodeToString(model.EncodeAudio(s.audio)))

	case "load":
		s.cmdLoad(args)

	case "unparcel":
		s.cmdUnparcel(args)

	case "save":
		s.cmdSave(args)

	case "open":
		s.cmdOpen(args)

	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return true

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
Audio Shell Commands:
  Editing:
    mute on|off        - Set the mute state
    volume <n>         - Set the volume (int32)
    name <text>        - Set the service name
    uri <path>         - Set the resource URI

  Encodings:
    show               - Show the model
    rep                - Dehydrate and show the representation and CBOR hex
    parcel             - Show the compact parcel hex
    load <hex>         - Hydrate the model from CBOR hex
    unparcel <hex>     - Replace the model with a decoded parcel

  Snapshots:
    save <file>        - Save the model to a snapshot file
    open <file>        - Replace the model with a saved snapshot

  Other:
    help               - Show this help
    quit               - Exit`)
}

func (s *Shell) binder() *model.Binder {
	return s.audio.Binder().WithLogger(s.logger, s.sessionID)
}

func (s *Shell) cmdMute(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: mute on|off")
		return
	}
	switch strings.ToLower(args[0]) {
	case "on", "true", "1":
		s.audio.SetMute(true)
	case "off", "false", "0":
		s.audio.SetMute(false)
	default:
		fmt.Fprintf(s.out, "Invalid mute value: %s (must be on or off)\n", args[0])
		return
	}
	fmt.Fprintln(s.out, "OK")
}

func (s *Shell) cmdVolume(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: volume <n>")
		return
	}
	v, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid volume: %s\n", args[0])
		return
	}
	s.audio.SetVolume(int32(v))
	fmt.Fprintln(s.out, "OK")
}

func (s *Shell) cmdURI(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: uri <path>")
		return
	}
	uri := args[0]
	if !model.ResourceTypeAudio.MatchesURI(uri) {
		fmt.Fprintf(s.out, "Warning: %s is not an audio resource path\n", uri)
	}
	s.audio.URI = uri
	fmt.Fprintln(s.out, "OK")
}

func (s *Shell) cmdRep() {
	r := s.binder().Dehydrate()
	data, err := wire.EncodeRepresentation(r)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, r)
	fmt.Fprintln(s.out, hex.EncodeToString(data))
}

func (s *Shell) cmdLoad(args []string) {
	data, ok := s.hexArg("load", args)
	if !ok {
		return
	}
	p, err := wire.DecodePayload(data)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	res, err := s.binder().Hydrate(p)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if missing := res.Missing(); len(missing) > 0 {
		fmt.Fprintf(s.out, "Missing: %s\n", strings.Join(missing, ", "))
	}
	if mismatched := res.Mismatched(); len(mismatched) > 0 {
		fmt.Fprintf(s.out, "Mismatched: %s\n", strings.Join(mismatched, ", "))
	}
	fmt.Fprintln(s.out, s.audio)
}

func (s *Shell) cmdUnparcel(args []string) {
	data, ok := s.hexArg("unparcel", args)
	if !ok {
		return
	}
	a, err := model.DecodeAudio(data)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	*s.audio = *a
	fmt.Fprintln(s.out, s.audio)
}

func (s *Shell) hexArg(cmd string, args []string) ([]byte, bool) {
	if len(args) < 1 {
		fmt.Fprintf(s.out, "Usage: %s <hex>\n", cmd)
		return nil, false
	}
	data, err := hex.DecodeString(strings.Join(args, ""))
	if err != nil {
		fmt.Fprintf(s.out, "Invalid hex: %v\n", err)
		return nil, false
	}
	return data, true
}

func (s *Shell) cmdSave(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: save <file>")
		return
	}
	store := persistence.NewModelStore(args[0])
	if err := store.SaveModel(model.OICTypeAudio, s.audio.URI, s.audio); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Saved to %s\n", store.Path())
}

func (s *Shell) cmdOpen(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: open <file>")
		return
	}
	ok, err := persistence.NewModelStore(args[0]).LoadModel(model.OICTypeAudio, s.audio)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if !ok {
		fmt.Fprintf(s.out, "No snapshot at %s\n", args[0])
		return
	}
	fmt.Fprintln(s.out, s.audio)
}
