// Package ast provides the parsed form of a config file line.
//
// The text format overloads the '@' character: it prefixes value references
// ("Key = @Other.Key"), suffixes section headers with their parent
// ("[Child@Parent]") and delimits included files ("@common.ini@"). The three
// uses are disambiguated by position in the grammar once, at parse time, and
// every line is handed to the loader as one of the tagged variants below:
//
//   - Include: a line that starts with '@' and names a file to load in place.
//   - SectionHeader: a "[Name]" line, with an optional parent and clear flag.
//   - Assignment: a "key = value" or "key += value" line.
//   - Comment: a line that starts with ';'.
//   - Invalid: a line that matches none of the above. It carries the reason so
//     the loader can report it with its line number.
//
// # Usage Example
//
//	sc := cfgtext.NewScanner(r, cfgtext.DefaultChunkSize)
//	for sc.Scan() {
//		switch n := sc.Node().(type) {
//		case *ast.SectionHeader:
//			fmt.Println("section", n.Name)
//		case *ast.Assignment:
//			fmt.Println(n.Key, "=", n.Value)
//		}
//	}
package ast
