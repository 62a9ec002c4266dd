package entity

// AppConfig singleton de configuração: identidade visual, lista de lojas e o
// endpoint de sincronização com a planilha.
//
// GasWebAppURL nunca é sobrescrita por um pull: o remoto não pode redirecionar
// o cliente para outro endpoint.
type AppConfig struct {
	CompanyName  string  `json:"companyName"`
	LogoText     string  `json:"logoText"`
	LogoURL      string  `json:"logoUrl,omitempty"`
	PrimaryColor string  `json:"primaryColor"`
	AccentColor  string  `json:"accentColor"`
	Stores       []Store `json:"stores"`
	GasWebAppURL string  `json:"gasWebAppUrl,omitempty"`
}
