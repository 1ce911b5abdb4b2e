package shared

// Resource identifies a spendable resource type in the game economy
type Resource string

// Well-known resources. The ledger is not restricted to these; any Resource
// key appearing in a blueprint cost or mission reward is tracked.
const (
	ResourceOrichalkum Resource = "ORICHALKUM"
	ResourceTitanium   Resource = "TITANIUM"
	ResourceDeuterium  Resource = "DEUTERIUM"
	ResourceCredits    Resource = "CREDITS"
)

// CopyCosts returns a defensive copy of a resource amount map
func CopyCosts(costs map[Resource]int) map[Resource]int {
	out := make(map[Resource]int, len(costs))
	for res, amount := range costs {
		out[res] = amount
	}
	return out
}

// ScaleCosts multiplies every amount in costs by factor
func ScaleCosts(costs map[Resource]int, factor int) map[Resource]int {
	out := make(map[Resource]int, len(costs))
	for res, amount := range costs {
		out[res] = amount * factor
	}
	return out
}
