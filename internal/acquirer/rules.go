package acquirer

import (
	"regexp"
	"sort"
)

// Patterns shared by rule entries. Widths and shapes come from each
// acquirer's terminal registration contract.
var (
	logical15    = regexp.MustCompile(`^\d{15}$`)
	logicalCielo = regexp.MustCompile(`^4\d{8}$`)
	logicalStone = regexp.MustCompile(`^[a-zA-Z0-9]{32}$`)

	codeTF    = regexp.MustCompile(`^TF[a-zA-Z0-9]{8}$`)
	codeStone = regexp.MustCompile(`^\d{9}$`)
	codeVero  = regexp.MustCompile(`^\d{12}$`)
)

// Rule describes how one acquirer expects a terminal record to look.
// PadLength > 0 means the logical number is zero-filled to that width
// before matching. A nil Code pattern accepts any non-empty code.
type Rule struct {
	PadLength int
	Logical   *regexp.Regexp
	Code      *regexp.Regexp
}

var rules = map[string]Rule{
	"adiq":           {Logical: logical15},
	"bigcard":        {Logical: logical15},
	"bin":            {PadLength: 15, Logical: logical15, Code: codeTF},
	"biz":            {Logical: logical15},
	"brasil card":    {Logical: logical15},
	"cabal":          {Logical: logical15},
	"cardse":         {Logical: logical15},
	"carto":          {Logical: logical15},
	"cielo":          {Logical: logicalCielo},
	"comprocard":     {Logical: logical15},
	"convcard":       {Logical: logical15},
	"credishop":      {Logical: logical15},
	"ctf frota":      {Logical: logical15},
	"fitcard":        {PadLength: 15, Logical: logical15},
	"getnetlac":      {PadLength: 15, Logical: logical15, Code: codeTF},
	"globalpayments": {Logical: logical15},
	"marketpay":      {Logical: logical15},
	"mettacard":      {Logical: logical15},
	"orgcard":        {Logical: logical15},
	"portalcard":     {Logical: logical15},
	"rede":           {Logical: logical15},
	"resomaq":        {Logical: logical15},
	"safra":          {PadLength: 15, Logical: logical15, Code: codeTF},
	"sipag":          {PadLength: 15, Logical: logical15, Code: codeTF},
	"softnex":        {PadLength: 15, Logical: logical15},
	"stone":          {Logical: logicalStone, Code: codeStone},
	"telenet":        {Logical: logical15},
	"valecard":       {Logical: logical15},
	"valeshop":       {PadLength: 15, Logical: logical15},
	"vero":           {PadLength: 15, Logical: logical15, Code: codeVero},
}

// Supported returns the known acquirer names in sorted order.
func Supported() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
