package main

import (
	"fmt"
	"os"
	"strings"

	"surd/internal/surd"
)

func main() {
	if len(os.Args) <= 1 {
		fmt.Println("Usage: encode <message>")
		fmt.Printf("Message characters: a-z, A-Z, '?' and space; at most %d of them.\n", surd.MaxMessageLen)
		return
	}

	message := strings.Join(os.Args[1:], " ")

	f1, f2, err := surd.Encode(message)
	if err != nil {
		fmt.Println("Encode error:")
		fmt.Println(err)
		return
	}

	fmt.Printf("f1=%s, f2=%d\n", f1, f2)
}
