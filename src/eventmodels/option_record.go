package eventmodels

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ContractMultiplier is the number of underlying shares one standard
// equity option contract represents.
const ContractMultiplier = 100

// OptionRecord is a single contract (call or put) of an options chain,
// tagged with its side and expiration. PremiumPaid approximates the total
// dollar volume traded today and is derived at construction, never fetched.
type OptionRecord struct {
	ContractSymbol    OptionSymbol
	OptionType        OptionType
	Expiry            ExpirationDate
	Strike            float64
	LastPrice         float64
	Volume            int
	OpenInterest      int
	PremiumPaid       float64
	ImpliedVolatility float64
	InTheMoney        bool
}

type OptionRecords []*OptionRecord

func (records OptionRecords) String() string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)

	table.SetHeader([]string{"CONTRACT", "TYPE", "EXPIRY", "STRIKE", "LAST", "VOLUME", "OPEN INT", "PREMIUM PAID", "IMPLIED VOL", "ITM"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetBorder(false)
	table.SetColumnSeparator("")

	for _, r := range records {
		table.Append([]string{
			string(r.ContractSymbol),
			string(r.OptionType),
			string(r.Expiry),
			fmt.Sprintf("%.2f", r.Strike),
			fmt.Sprintf("%.2f", r.LastPrice),
			p.Sprintf("%d", r.Volume),
			p.Sprintf("%d", r.OpenInterest),
			fmt.Sprintf("$%s", p.Sprintf("%.2f", r.PremiumPaid)),
			fmt.Sprintf("%.4f", r.ImpliedVolatility),
			fmt.Sprintf("%t", r.InTheMoney),
		})
	}

	table.Render()
	return display.String()
}
