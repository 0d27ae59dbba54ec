// Command cvi renders Core Values Index diagrams from score tables.
//
// Usage:
//
//	cvi render team.csv -o team.svg
//	cvi render team.json --only Mark,Karen -o pair.png
//	cvi summary team.yaml
//	cvi convert cvi-data.js team.csv
package main

import "github.com/gogpu/cvi/internal/cli"

func main() {
	cli.Execute()
}
