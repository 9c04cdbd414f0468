// This file is part of pnokernels.
//
// pnokernels is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// pnokernels is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with pnokernels.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"image"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/pnokernels/dataarm"
	"github.com/jetsetilly/pnokernels/environment"
	"github.com/jetsetilly/pnokernels/kernels"
	"github.com/jetsetilly/pnokernels/logger"
	"github.com/jetsetilly/pnokernels/modalflag"
	"github.com/jetsetilly/pnokernels/performance"
	"github.com/jetsetilly/pnokernels/player"
	"github.com/jetsetilly/pnokernels/preferences"
	"github.com/jetsetilly/pnokernels/prefs"
	"github.com/jetsetilly/pnokernels/screendump"
	"github.com/jetsetilly/pnokernels/sdlview"
	"github.com/jetsetilly/pnokernels/statsview"
)

// size of the logical screen drawn by the scene
const (
	logicalWidth  = 320
	logicalHeight = 200
)

// SDL requires that window creation and event handling happen on the main
// thread
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	// #ctrlc
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		fmt.Print("\r")
		os.Exit(0)
	}()

	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. the return value is
// the exit status of the program.
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("VIEW", "BENCH", "DUMP", "COMPARE", "PARAMS")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "VIEW":
		err = view(md)

	case "BENCH":
		err = bench(md)

	case "DUMP":
		err = dump(md)

	case "COMPARE":
		err = compare(md)

	case "PARAMS":
		err = params(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// flags common to modes that create an environment
type environmentFlags struct {
	prefs *string
	log   *bool
}

func addEnvironmentFlags(md *modalflag.Modes) environmentFlags {
	return environmentFlags{
		prefs: md.AddString("prefs", "", "preferences for this run: key::value; key::value"),
		log:   md.AddBool("log", false, "echo log to stdout"),
	}
}

// newEnvironment creates an environment with the preferences from the
// command line. the override string has the same form as the -prefs flag and
// takes priority over it
func (f environmentFlags) newEnvironment(md *modalflag.Modes, label environment.Label, override string) (*environment.Environment, error) {
	if *f.log {
		logger.SetEcho(md.Output)
	} else {
		logger.SetEcho(nil)
	}

	prefs.PushCommandLineStack(*f.prefs + ";" + override)
	defer func() {
		// unused preferences are most likely spelling mistakes
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Fprintf(md.Output, "* unused preferences: %s\n", unused)
		}
	}()

	pr, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	return environment.NewEnvironment(label, pr)
}

func view(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addEnvironmentFlags(md)
	zoom := md.AddInt("zoom", 2, "window zoom")
	fps := md.AddInt("fps", 30, "frames per second")
	save := md.AddBool("save", false, "save screen preferences on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	env, err := flgs.newEnvironment(md, "", "")
	if err != nil {
		return err
	}

	pl, err := player.NewPlayer(env, logicalWidth, logicalHeight)
	if err != nil {
		return err
	}

	vw, err := sdlview.NewView(env, pl, *zoom, *fps)
	if err != nil {
		return err
	}
	defer vw.Destroy()

	err = vw.Run()
	if err != nil {
		return err
	}

	if *save {
		return env.Prefs.Save()
	}

	return nil
}

func bench(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addEnvironmentFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma sep)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		stop := statsview.Launch(md.Output)
		defer stop()
	}

	env, err := flgs.newEnvironment(md, "", "")
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, env, *duration)
}

func dump(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addEnvironmentFlags(md)
	frames := md.AddInt("frames", 100, "number of frames to draw before saving")
	zoom := md.AddInt("zoom", 1, "zoom factor of the saved image")
	logical := md.AddBool("logical", false, "save the logical screen rather than the device screen")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	env, err := flgs.newEnvironment(md, "", "")
	if err != nil {
		return err
	}

	pl, err := player.NewPlayer(env, logicalWidth, logicalHeight)
	if err != nil {
		return err
	}

	for range max(*frames, 1) {
		if err := pl.Step(); err != nil {
			return err
		}
	}

	var img image.Image = pl.Screen().Image()
	label := "device"
	if *logical {
		img = pl.Logical().IndexedImage(pl.Palette().NativePalette())
		label = "logical"
	}

	fn, err := screendump.Save(img, label, *zoom)
	if err != nil {
		return err
	}
	fmt.Fprintf(md.Output, "frame %d saved to %s\n", pl.FrameNum(), fn)

	return nil
}

// compare draws the same frames with the software and offloaded kernels and
// compares the digests of the device screen
func compare(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addEnvironmentFlags(md)
	frames := md.AddInt("frames", 500, "number of frames to compare")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var digests [2]string
	for i, useARM := range []bool{false, true} {
		env, err := flgs.newEnvironment(md, environment.Label(fmt.Sprintf("compare %v", useARM)),
			fmt.Sprintf("arm.enabled::%v", useARM))
		if err != nil {
			return err
		}

		digests[i], err = performance.Frames(env, *frames)
		if err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "%-9s %s\n", map[bool]string{false: "software", true: "offloaded"}[useARM], digests[i])
	}

	if digests[0] != digests[1] {
		return fmt.Errorf("digests differ after %d frames", *frames)
	}

	return nil
}

// params shows the layout of the parameter block for a kernel. a graph of the
// parameter struct can be written in the DOT format
func params(md *modalflag.Modes) error {
	md.NewMode()

	dot := md.AddString("dot", "", "write graph of the parameter struct to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		var names []string
		for id := range kernels.NumIDs {
			names = append(names, id.String())
		}
		return fmt.Errorf("kernel name required for %s mode: %s", md, strings.Join(names, ", "))
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	var prm kernels.Params
	for id := range kernels.NumIDs {
		if strings.EqualFold(id.String(), md.GetArg(0)) {
			prm = kernels.New(id)
			break // for loop
		}
	}
	if prm == nil {
		return fmt.Errorf("unknown kernel: %s", md.GetArg(0))
	}

	l := prm.Layout()
	fmt.Fprintf(md.Output, "%s %s\n", prm.ID(), l)

	if *dot != "" {
		f, err := os.Create(*dot)
		if err != nil {
			return err
		}
		defer f.Close()

		blk := make(dataarm.Block, l.Size())
		prm.Encode(blk)
		memviz.Map(f, prm, &blk)
	}

	return nil
}
