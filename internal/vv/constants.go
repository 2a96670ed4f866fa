//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MYNAME    = "Hipparchia LDA Visualizer"
	SHORTNAME = "HLV"
	VERSION   = "0.3.2"

	BLACKANDWHITE       = false
	CONFIGLOCATION      = "."
	CONFIGALTAPTH       = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGBASIC         = "hlv-config.json"
	CONFIGSTOPS         = "hlv-stops-%s.json" // %s = language
	DEFAULTECHOLOGLEVEL = 0
	DEFAULTGOLOGLEVEL   = 0
	DEFAULTCORPUSEXT    = ".txt"
	DEFAULTOUTPUTDIR    = "visualizations"
	DEFAULTSTOPLANG     = "english"
	DIRPERMS            = 0755
	JSONINDENT          = "  "
	SERVEDFROMHOST      = "127.0.0.1"
	SERVEDFROMPORT      = 8010
	WRITEPERMS          = 0644
)
