package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("result")
	fmt.Fprintln(os.Stdout, "result")
}
