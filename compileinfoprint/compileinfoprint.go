// compileinfoprint is imported by commands for the side effect of announcing
// their build on os.Stderr before any other output.
package compileinfoprint

import "github.com/carbocation/genotypefasta/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
