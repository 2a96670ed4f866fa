//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	TERMINALTEXT = `Copyright (C) %s / %s
      %s

      This program comes with ABSOLUTELY NO WARRANTY; without even the  
      implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.

      This is free software, and you are welcome to redistribute it and/or 
      modify it under the terms of the GNU General Public License version 3.`

	PROJYEAR = "2022-24"
	PROJAUTH = "E. Gunderson"
	PROJMAIL = "Department of Classics, 125 Queen’s Park, Toronto, ON  M5S 2C7 Canada"
	PROJURL  = "https://github.com/e-gun/HipparchiaLDAVis"

	HELPTEXTTEMPLATE = `S3command line optionsS0:
   C1-bdC0 C2{num}C0    draw the topic bar chart for document #num
   C1-bwC0          disable color output in the console
   C1-cdC0 C2{path}C0   read the corpus from the text files in this folder [C6currentC0: C3{{.corpdir}}C0]
   C1-ceC0 C2{ext}C0    extension of the corpus files [C6currentC0: C3{{.corpext}}C0]
   C1-cfC0 C2{path}C0   read the configuration from this file instead of "C3{{.home}}{{.conffile}}C0"
   C1-dbC0 C2{name}C0   read the corpus from a database; available: C3sqliteC0, C3pgxC0
   C1-dqC0 C2{sql}C0    query that returns C3label, textC0 rows [C6currentC0: C3{{.dbquery}}C0]
   C1-dsC0 C2{dsn}C0    database connection string
   C1-dpC0 C2{num}C0    dpi of raster images [C6currentC0: C3{{.dpi}}C0]
   C1-elC0 C2{num}C0    set echo server log level (C10-3C0) [C6currentC0: C3{{.echoll}}C0]
   C1-glC0 C2{num}C0    set golang log level (C10-5C0) [C6currentC0: C3{{.hlvll}}C0]
   C1-hC0           print this help information
   C1-hmC0 C2{name}C0   heatmap file name [C6currentC0: C3{{.hmname}}C0]
   C1-hxC0 C2{ext}C0    heatmap file type; available: C3pngC0, C3jpgC0, C3tifC0, C3svgC0, C3pdfC0 [C6currentC0: C3{{.hmext}}C0]
   C1-iaC0          also write the interactive visualization (C3{{.interact}}.htmlC0 and C3{{.interact}}.jsonC0)
   C1-itC0 C2{num}C0    lda iterations [C6currentC0: C3{{.iter}}C0]
   C1-laC0 C2{num}C0    relevance lambda of the interactive page (C10-1C0) [C6currentC0: C3{{.lambda}}C0]
   C1-mtC0 C2{num}C0    topic to draw from a mallet file or to rank [C6currentC0: C3{{.mtopic}}C0]
   C1-mwC0 C2{path}C0   draw a word cloud from a mallet word-weights file
   C1-odC0 C2{path}C0   output folder [C6currentC0: C3{{.outdir}}C0]
   C1-pcC0          enable CPU profiling run
   C1-pmC0          enable MEM profiling run
   C1-rkC0 C2{path}C0   look up the rank of the C1-mtC0 topic in this CSV file
   C1-rtC0 C2{num}C0    terms per topic on the interactive page [C6currentC0: C3{{.relterms}}C0]
   C1-saC0 C2{string}C0 server IP address [C6currentC0: C3{{.host}}C0]
   C1-slC0 C2{lang}C0   stop word list; available: C3englishC0, C3latinC0, C3greekC0, C3noneC0 [C6currentC0: C3{{.stops}}C0]
   C1-spC0 C2{num}C0    server port [C6currentC0: C3{{.port}}C0]
   C1-svC0          serve the output folder after rendering
   C1-tpC0 C2{num}C0    number of topics [C6currentC0: C3{{.topics}}C0][C6maxC0: C3{{.maxtopics}}C0]
   C1-twC0          print the topic words table
   C1-vC0           print version info and exit
   C1-vvC0          print full version info and exit
   C1-wcC0 C2{mode}C0   word cloud colors; available: C3fixedC0, C3randomC0 [C6currentC0: C3{{.wcmode}}C0]
   C1-wlC0          draw a word cloud for every topic
   C1-wnC0 C2{num}C0    words per word cloud [C6currentC0: C3{{.wcwords}}C0]
   C1-wkC0 C2{int}C0    number of workers [C1cpu_countC0 is C3{{.cpus}}C0][C6currentC0: C3{{.workers}}C0]

     S1NB:S0 a properly formatted version of "C3{{.conffile}}C0" in "C3{{.home}}C0" configures everything for you.
         See the sample configuration file at
             C3{{.projurl}}C0
`
)
