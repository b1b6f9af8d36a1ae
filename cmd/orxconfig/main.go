// Command orxconfig inspects and edits orx config files.
package main

func main() {
	execute()
}
