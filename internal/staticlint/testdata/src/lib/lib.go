package lib

import (
	"fmt"
	"io"
	"os"
)

func Report(w io.Writer, line string) {
	fmt.Println(line)             // want "printing to stdout outside main package"
	fmt.Printf("%s\n", line)      // want "printing to stdout outside main package"
	fmt.Fprintln(os.Stdout, line) // want "printing to stdout outside main package"
	fmt.Fprintln(w, line)
	fmt.Fprintln(os.Stderr, line)
	_ = fmt.Sprint(line)
}
