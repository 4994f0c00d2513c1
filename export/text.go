package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/poiesic/termfinder/core"
)

// NoResultsMessage is printed when a lookup found nothing.
const NoResultsMessage = "No results found."

// WriteText writes each atom as a block of Name, Code and Source Vocabulary
// lines followed by a blank line, or NoResultsMessage when res is empty.
func WriteText(w io.Writer, res *core.Resolution) error {
	bw := bufio.NewWriter(w)
	if !res.Found() {
		fmt.Fprintln(bw, NoResultsMessage)
		return bw.Flush()
	}

	for _, atom := range res.Atoms {
		fmt.Fprintf(bw, "Name: %s\n", atom.Name)
		fmt.Fprintf(bw, "Code: %s\n", atom.Code())
		fmt.Fprintf(bw, "Source Vocabulary: %s\n\n", atom.RootSource)
	}
	return bw.Flush()
}
