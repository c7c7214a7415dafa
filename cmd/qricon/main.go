package main

import (
	"fmt"
	"os"

	qricon "github.com/Mictilt/go-qricon"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintf(os.Stderr, "Usage: %s <url> <icon_path> <output_path>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Example: %s https://example.com logo.png output.png\n", os.Args[0])
		os.Exit(1)
	}

	url, iconPath, outputPath := os.Args[1], os.Args[2], os.Args[3]

	if err := qricon.Generate(url, iconPath, outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("QR code with icon generated successfully: %s\n", outputPath)
}
