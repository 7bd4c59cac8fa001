// Command circleprogress renders and demonstrates the circular image
// progress view.
package main

import "github.com/go-drift/circleprogress/cmd/circleprogress/cmd"

func main() {
	cmd.Execute()
}
