package entities

// Material is the wood species a design is built from.
// Any value outside the known set is accepted and priced with the default factor.
type Material string

const (
	MaterialOak      Material = "oak"
	MaterialMaple    Material = "maple"
	MaterialPine     Material = "pine"
	MaterialMahogany Material = "mahogany"
	MaterialWalnut   Material = "walnut"
)
