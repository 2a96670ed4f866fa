//    HipparchiaLDAVis
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/e-gun/HipparchiaLDAVis/internal/gen"
	"github.com/e-gun/HipparchiaLDAVis/internal/mm"
	"github.com/e-gun/HipparchiaLDAVis/internal/vv"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

//
// STOPWORDS
//

// Stops - the stop list for lang; a copy on disk in cfgdir overrides the built-in list and is written if absent
func Stops(lang string, cfgdir string, m *mm.MessageMaker) ([]string, error) {
	const (
		FAIL1 = "unknown stop word list '%s': use english, latin, greek or none"
	)
	switch lang {
	case "none", "":
		return nil, nil
	case "english", "latin", "greek":
		return readstopconfig(lang, cfgdir, m), nil
	default:
		return nil, fmt.Errorf(FAIL1, lang)
	}
}

// BuiltinStops - the compiled-in list for lang
func BuiltinStops(lang string) []string {
	var stops []string
	switch lang {
	case "english":
		stops = gen.StringMapKeysIntoSlice(gen.ToSet(EnglishStop))
	case "latin":
		stops = gen.StringMapKeysIntoSlice(getlatinstops())
	case "greek":
		stops = gen.StringMapKeysIntoSlice(getgreekstops())
	}
	sort.Strings(stops)
	return stops
}

// readstopconfig - read the stop file for fn from cfgdir and return []stopwords; if it does not exist, generate it
func readstopconfig(fn string, cfgdir string, m *mm.MessageMaker) []string {
	const (
		ERR1 = "readstopconfig() failed to parse "
		ERR2 = "readstopconfig() could not write "
		MSG1 = "readstopconfig() wrote stop word file: "
		MSG2 = "readstopconfig() read stop word file: "
	)

	stops := BuiltinStops(fn)
	if cfgdir == "" {
		return stops
	}

	vcfg := filepath.Join(cfgdir, fmt.Sprintf(vv.CONFIGSTOPS, fn))

	loadedcfg, err := os.Open(vcfg)
	if errors.Is(err, os.ErrNotExist) {
		content, e := json.MarshalIndent(stops, vv.JSONINDENT, vv.JSONINDENT)
		if e == nil {
			e = os.WriteFile(vcfg, content, vv.WRITEPERMS)
		}
		if e != nil {
			m.WARN(ERR2 + vcfg)
		} else {
			m.PEEK(MSG1 + vcfg)
		}
		return stops
	} else if err != nil {
		m.WARN(ERR1 + vcfg)
		return stops
	}

	decoderc := json.NewDecoder(loadedcfg)
	var stp []string
	errc := decoderc.Decode(&stp)
	_ = loadedcfg.Close()
	if errc != nil {
		m.CRIT(ERR1 + vcfg)
		return stops
	}
	m.TMI(MSG2 + vcfg)
	return stp
}

var (
	// EnglishStop - function words and the commonest verbs
	EnglishStop = []string{"a", "about", "above", "after", "again", "against", "all", "also", "am", "an", "and", "any",
		"are", "as", "at", "be", "because", "been", "before", "being", "below", "between", "both", "but", "by", "can",
		"could", "did", "do", "does", "doing", "down", "during", "each", "even", "few", "for", "from", "further",
		"had", "has", "have", "having", "he", "her", "here", "hers", "herself", "him", "himself", "his", "how", "i",
		"if", "in", "into", "is", "it", "its", "itself", "just", "may", "me", "might", "more", "most", "must", "my",
		"myself", "no", "nor", "not", "now", "of", "off", "on", "once", "one", "only", "or", "other", "our", "ours",
		"ourselves", "out", "over", "own", "same", "shall", "she", "should", "so", "some", "such", "than", "that",
		"the", "their", "theirs", "them", "themselves", "then", "there", "these", "they", "this", "those", "through",
		"to", "too", "under", "until", "up", "upon", "us", "very", "was", "we", "were", "what", "when", "where",
		"which", "while", "who", "whom", "why", "will", "with", "would", "yet", "you", "your", "yours", "yourself",
		"yourselves"}
	// Latin100 - the 100 most common latin headwords
	Latin100 = []string{"qui¹", "et", "in", "edo¹", "is", "sum¹", "hic", "non", "ab", "ut", "Cos²", "si", "ad", "cum", "ex", "a", "eo¹",
		"ego", "quis¹", "tu", "Eos", "dico²", "ille", "sed", "de", "neque", "facio", "possum", "atque", "sui", "res",
		"quam", "aut", "ipse", "huc", "habeo", "do", "omne", "video", "ito", "magnus", "b", "alius²", "for", "idem",
		"suum", "etiam", "per", "enim", "omnes", "ita", "suus", "omnis", "autem", "vel", "vel", "Alius¹", "qui²", "quo",
		"nam", "bonus", "neo¹", "meus", "volo¹", "ne³", "ne¹", "suo", "verus", "pars", "reor", "sua", "vaco", "verum",
		"primus", "unus", "multus", "causa", "jam", "tamen", "Sue", "nos", "dies", "Ios", "modus", "tuus", "venio",
		"pro¹", "pro²", "ago", "deus", "annus", "locus", "homo", "pater", "eo²", "tantus", "fero", "quidem", "noster",
		"an", "locum"}
	LatExtra = []string{"at", "o", "tum", "tunc", "dum", "illic", "quia", "sive", "num", "adhuc", "tam", "ibi", "cur",
		"usquam", "quoque", "duo", "talis", "simul", "igitur", "utique²", "aliqui", "apud", "sic", "umquam", "ergo",
		"ob", "xu", "x", "iii", "u", "post", "ac", "ut", "totus", "iste", "sue", "ceter", "inter", "eos"}
	LatStop = append(Latin100, LatExtra...)
	// LatinKeep - members of LatStop we will not toss
	LatinKeep = []string{"facio", "possum", "habeo", "video", "magnus", "bonus", "volo¹", "primus", "venio", "ago",
		"deus", "annus", "locus", "pater", "fero"}
	// Greek150 - the 150 most common greek headwords
	Greek150 = []string{"ὁ", "καί", "τίϲ", "ἔδω", "δέ", "εἰμί", "δέω¹", "δεῖ", "δέομαι", "εἰϲ", "αὐτόϲ", "τιϲ", "οὗτοϲ", "ἐν",
		"γάροϲ", "γάρον", "γάρ", "οὐ", "μένω", "μέν", "τῷ", "ἐγώ", "ἡμόϲ", "κατά", "Ζεύϲ", "ἐπί", "ὡϲ", "διά",
		"πρόϲ", "προϲάμβ", "τε", "πᾶϲ", "ἐκ", "ἕ", "ϲύ", "Ἀλλά", "γίγνομαι", "ἁμόϲ", "ὅϲτιϲ", "ἤ¹", "ἤ²", "ἔχω",
		"ὅϲ", "μή", "ὅτι¹", "λέγω¹", "ὅτι²", "τῇ", "Τήιοϲ", "ἀπό", "εἰ", "περί", "ἐάν", "θεόϲ", "φημί", "ἐκάϲ",
		"ἄν¹", "ἄνω¹", "ἄλλοϲ", "qui¹", "πηρόϲ", "παρά", "ἀνά", "αὐτοῦ", "ποιέω", "ἄναξ", "ἄνα", "ἄν²", "πολύϲ",
		"οὖν", "λόγοϲ", "οὕτωϲ", "μετά", "ἔτι", "ὑπό", "ἑαυτοῦ", "ἐκεῖνοϲ", "εἶπον", "πρότεροϲ", "edo¹", "μέγαϲ",
		"ἵημι", "εἷϲ", "οὐδόϲ", "οὐδέ", "ἄνθρωποϲ", "ἠμί", "μόνοϲ", "κύριοϲ", "διό", "οὐδείϲ", "ἐπεί", "πόλιϲ",
		"τοιοῦτοϲ", "χάω", "καθά", "θεάομαι", "γε", "ἕτεροϲ", "δοκέω", "λαμβάνω", "δή", "δίδωμι", "ἵνα",
		"βαϲιλεύϲ", "φύϲιϲ", "ἔτοϲ", "πατήρ", "ϲῶμα", "καλέω", "ἐρῶ", "υἱόϲ", "ὅϲοϲ", "γαῖα", "οὔτε", "οἷοϲ",
		"ἀνήρ", "ὁράω", "ψυχή", "Ἔχιϲ", "ὥϲπερ", "αὐτόϲε", "χέω", "ὑπέρ", "ϲόϲ", "θεάω", "νῦν", "ἐμόϲ", "δύναμαι",
		"φύω", "πάλιν", "ὅλοξ", "ἀρχή", "καλόϲ", "δύναμιϲ", "πωϲ", "δύο", "ἀγαθόϲ", "οἶδα", "δείκνυμι", "χρόνοϲ",
		"ὅμοιοϲ", "ἕκαϲτοϲ", "ὁμοῖοϲ", "ὥϲτε", "ἡμέρα", "γράφω", "δραχμή", "μέροϲ"}
	GreekExtra = []string{"ἀεί", "ὡϲαύτωϲ", "μηδέποτε", "μηδέ", "μηδ", "μηδέ", "ταὐτόϲ", "νυνί", "μεθ", "ἀντ", "μέχρι",
		"ἄνωθεν", "ὀκτώ", "ἓξ", "μετ", "τ", "μ", "αὐτόθ", "οὐδ", "εἵνεκ", "νόϲφι", "ἐκεῖ", "οὔκουν", "θ", "μάλιϲτ", "ὧδε",
		"πη", "τῇδ", "δι", "πρό", "ἀλλ", "ἕνεκα", "δ", "ἀλλά", "ἔπειτα", "καθ", "ταῦθ", "μήποτ", "ἀπ", "κ", "μήτ",
		"εὖτ", "αὖθιϲ", "∙∙∙", "∙∙", "∙", "∙∙∙∙", "oxy", "col", "fr", "*", "ϲύν", "ὅδε", "γ", "μέντοι", "εἶμι", "τότε",
		"ποτέ", "ὅταν", "πάνυ", "ἐπ", "πού", "οὐκοῦν", "παρ", "ὅπωϲ", "μᾶλλον", "μηδείϲ", "νή", "μήτε", "ἅπαϲ", "τοίνυν",
		"τοίνυν", "ἄρα", "αὖ", "εἴτε", "ἅμα", "ἆρ", "εὖ", "ϲχεδόν"}
	GreekStop = append(Greek150, GreekExtra...)
	// GreekKeep - members of GreekStop we will not toss
	GreekKeep = []string{"ἔχω", "λέγω¹", "θεόϲ", "φημί", "ποιέω", "ἵημι", "μόνοϲ", "κύριοϲ", "πόλιϲ", "θεάομαι", "δοκέω", "λαμβάνω",
		"δίδωμι", "βαϲιλεύϲ", "φύϲιϲ", "ἔτοϲ", "πατήρ", "ϲῶμα", "καλέω", "ἐρῶ", "υἱόϲ", "γαῖα", "ἀνήρ", "ὁράω",
		"ψυχή", "δύναμαι", "ἀρχή", "καλόϲ", "δύναμιϲ", "ἀγαθόϲ", "οἶδα", "δείκνυμι", "χρόνοϲ", "γράφω", "δραχμή",
		"μέροϲ", "λόγοϲ"}
)

func getgreekstops() map[string]struct{} {
	gs := gen.SetSubtraction(slices.Clone(GreekStop), GreekKeep)
	return gen.ToSet(unmark(gs))
}

func getlatinstops() map[string]struct{} {
	ls := gen.SetSubtraction(slices.Clone(LatStop), LatinKeep)
	return gen.ToSet(unmark(ls))
}

// unmark - headwords carry homonym markers ("qui¹") that never survive tokenizing
func unmark(ww []string) []string {
	swap := strings.NewReplacer("¹", "", "²", "", "³", "")
	out := make([]string, 0, len(ww))
	for _, w := range ww {
		if w = swap.Replace(w); w != "" {
			out = append(out, strings.ToLower(w))
		}
	}
	return out
}
