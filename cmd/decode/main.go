package main

import (
	"fmt"
	"os"
	"strconv"

	"surd/internal/surd"
)

func main() {
	if len(os.Args) <= 2 {
		fmt.Println("Usage: decode <f1> <f2>")
		return
	}

	f1, err := surd.ParseDecimal(os.Args[1])
	if err != nil {
		fmt.Println("f1 must be a non-negative decimal number.")
		return
	}

	f2, err := strconv.Atoi(os.Args[2])
	if err != nil {
		fmt.Println("f2 must be a whole number.")
		return
	}

	message, err := surd.Decode(f1, f2)
	if err != nil {
		fmt.Println("Decode error:")
		fmt.Println(err)
		return
	}

	fmt.Println(message)
}
