package entity

// Dataset snapshot completo das seis coleções mais a configuração — a unidade
// de troca com a planilha remota (push e pull operam sempre no conjunto inteiro).
// As chaves JSON são as esperadas pelo web app do Apps Script.
type Dataset struct {
	Users        []User             `json:"users"`
	Products     []Product          `json:"products"`
	Transactions []Transaction      `json:"transactions"`
	Stores       []Store            `json:"stores"`
	RawMaterials []RawMaterialEntry `json:"rawMaterials"`
	Config       AppConfig          `json:"config"`
}
