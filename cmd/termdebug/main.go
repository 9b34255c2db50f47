// Command termdebug runs a command under a pseudoterminal and records every
// byte crossing it, which is handy for debugging the editor's input decoding
// and rendering against a real terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"
)

func logCopy(dst io.Writer, src io.Reader, logw io.Writer, name string) {
	buf := make([]byte, 4096)
	for {
		nr, errR := src.Read(buf)
		if nr > 0 {
			fmt.Fprintf(logw, "%s: %q\n", name, buf[:nr])
			if _, errW := dst.Write(buf[:nr]); errW != nil {
				fmt.Fprintf(logw, "%s: write error: %+v\n", name, errW)
				return
			}
		}
		if errR != nil {
			if errR != io.EOF {
				fmt.Fprintf(logw, "%s: read error: %+v\n", name, errR)
			}
			return
		}
	}
}

func main() {
	logPath := flag.String("log", "termdebug.log", "path of the byte-stream log")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-log file] <command> [<args>]\n", os.Args[0])
		os.Exit(1)
	}

	logFile, err := os.Create(*logPath)
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()

	c := exec.Command(flag.Arg(0), flag.Args()[1:]...)
	ptmx, err := pty.Start(c)
	if err != nil {
		log.Fatal(err)
	}
	defer ptmx.Close()

	// Propagate our terminal size to the child.
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	go func() {
		for range ch {
			if err := pty.InheritSize(os.Stdin, ptmx); err != nil {
				log.Printf("error resizing pty: %s", err)
			}
		}
	}()
	ch <- syscall.SIGWINCH
	defer func() { signal.Stop(ch); close(ch) }()

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatal(err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	go logCopy(ptmx, os.Stdin, logFile, "stdin")
	logCopy(os.Stdout, ptmx, logFile, "stdout")
}
