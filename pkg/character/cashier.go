package character

import (
	"maps"

	"github.com/jwebster45206/albert/pkg/item"
)

const CashierName = "cashier"

const (
	cashierDescription = "A single cashier here is present, responsibly standing at the counter."
	cashierHello       = "Cashier: Hello, what do you want?"
	cashierOutOfStock  = "Cashier: Sorry, we're out of stock"
	cashierHint        = "try typing a b or c."
)

// good is one thing the cashier sells.
type good struct {
	command string
	label   string
	item    string
}

// cashierGoods is the fixed stock. Adding a good means adding an entry here.
var cashierGoods = []good{
	{command: "a", label: "Buy sausage", item: "sausage"},
	{command: "b", label: "Buy ham", item: "ham"},
	{command: "c", label: "Buy cutlet", item: "cutlet"},
}

// Cashier sells each of its goods once. Every reply ends the conversation.
type Cashier struct {
	inventory ItemInserter
	plan      SpeakerSetter
	offers    map[string]string
}

// Ensure Cashier implements Character interface
var _ Character = (*Cashier)(nil)

// NewCashier creates a cashier with a full stock.
func NewCashier(inventory ItemInserter, plan SpeakerSetter) *Cashier {
	c := &Cashier{
		inventory: inventory,
		plan:      plan,
		offers:    make(map[string]string, len(cashierGoods)),
	}
	for _, g := range cashierGoods {
		c.offers[g.command] = g.label
	}
	return c
}

// Respond sells the good selected by line if it is still offered.
// Any other input gets a hint. The dialogue ends either way.
func (c *Cashier) Respond(line string) string {
	reply := cashierHint
	if g, ok := c.lookup(line); ok {
		c.inventory.Insert(item.New(g.item, true, ""))
		delete(c.offers, g.command)
		reply = "Here is your " + g.item + "."
	}
	c.plan.SetCurrentSpeaker("")
	return endDialogue(reply)
}

func (c *Cashier) lookup(command string) (good, bool) {
	if _, offered := c.offers[command]; !offered {
		return good{}, false
	}
	return findGood(command)
}

func findGood(command string) (good, bool) {
	for _, g := range cashierGoods {
		if g.command == command {
			return g, true
		}
	}
	return good{}, false
}

// Sells returns the name of the item command buys, whether or not it is
// still in stock.
func (c *Cashier) Sells(command string) (string, bool) {
	g, ok := findGood(command)
	return g.item, ok
}

// Greeting lists what is left to buy. Once everything is sold the cashier
// ends the conversation straight away.
func (c *Cashier) Greeting() string {
	if len(c.offers) > 0 {
		return cashierHello + "\n" + renderOffers(c.offers)
	}
	c.plan.SetCurrentSpeaker("")
	return endDialogue(cashierOutOfStock)
}

func (c *Cashier) Name() string {
	return CashierName
}

func (c *Cashier) Description() string {
	return cashierDescription
}

// Offers returns a copy of the remaining offers.
func (c *Cashier) Offers() map[string]string {
	return maps.Clone(c.offers)
}

// RetainOffers drops every offer whose command is not in keys.
// Offers are never added back.
func (c *Cashier) RetainOffers(keys []string) {
	keep := make(map[string]bool, len(keys))
	for _, k := range keys {
		keep[k] = true
	}
	for k := range c.offers {
		if !keep[k] {
			delete(c.offers, k)
		}
	}
}
