package command

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/errwrap"
	segAscii "github.com/segmentio/asm/ascii"
	"github.com/urfave/cli"

	"github.com/mhr3/rollsearch/hashsearch"
	"github.com/mhr3/rollsearch/rolling"
)

// SearchAction looks for the second argument in the first and prints the
// haystack from the match to its end, or NotFound.
var SearchAction = func(ctx *cli.Context) error {
	if ctx.NArg() < 2 {
		return cli.NewExitError("expected HAYSTACK and NEEDLE arguments", 1)
	}

	hashName := ctx.String("hash")
	newHash, err := rolling.Lookup(hashName)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	haystack, needle, release, err := loadInputs(ctx.Args().Get(0), ctx.Args().Get(1), ctx.Bool("file"))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	defer func() {
		if err := release(); err != nil {
			Clog.Printf("Failed to release inputs: %s", err)
		}
	}()

	pos := find(haystack, needle, hashName, newHash, ctx.Bool("verbose"))

	w := ctx.App.Writer
	switch {
	case pos < 0:
		fmt.Fprintln(w, NotFound)
	case ctx.Bool("index"):
		fmt.Fprintln(w, pos)
	default:
		out := string(haystack[pos:])
		if ctx.Bool("quote") && !segAscii.ValidString(out) {
			out = strconv.Quote(out)
		}
		fmt.Fprintln(w, out)
	}
	return nil
}

// find returns the index of needle in haystack. The default hash goes
// straight to the additive kernel; other hashes go through a Searcher.
func find(haystack, needle []byte, hashName string, newHash rolling.Factory, verbose bool) int {
	if hashName != "" && hashName != rolling.Default {
		if verbose {
			Clog.Printf("Scan statistics are only collected for the %q hash", rolling.Default)
		}
		return hashsearch.NewSearcherWithHash(string(needle), newHash).Index(haystack)
	}
	if !verbose {
		return hashsearch.Index(haystack, needle)
	}
	pos, st := hashsearch.IndexStats(haystack, needle)
	Clog.Printf("haystack=%d needle=%d windows=%d candidates=%d collisions=%d compared=%d",
		len(haystack), len(needle), st.Windows, st.Candidates, st.Collisions, st.Compared)
	return pos
}

// loadInputs returns the haystack and needle, either the arguments
// themselves or the contents of the files they name. release must be
// called once the inputs are no longer used.
func loadInputs(haystackArg, needleArg string, files bool) (haystack, needle []byte, release func() error, err error) {
	if !files {
		return []byte(haystackArg), []byte(needleArg), noRelease, nil
	}

	haystack, releaseHaystack, err := mapFile(haystackArg)
	if err != nil {
		return nil, nil, nil, errwrap.Wrapf(fmt.Sprintf("Failed to read haystack file '%s': {{err}}", haystackArg), err)
	}
	needle, releaseNeedle, err := mapFile(needleArg)
	if err != nil {
		if err := releaseHaystack(); err != nil {
			Clog.Printf("Failed to release haystack file '%s': %s", haystackArg, err)
		}
		return nil, nil, nil, errwrap.Wrapf(fmt.Sprintf("Failed to read needle file '%s': {{err}}", needleArg), err)
	}

	release = func() error {
		errNeedle := releaseNeedle()
		if err := releaseHaystack(); err != nil {
			return err
		}
		return errNeedle
	}
	return haystack, needle, release, nil
}

func noRelease() error { return nil }
