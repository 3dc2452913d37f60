package domain

// Category is one of the fixed support categories a message resolves to.
type Category string

const (
	CategoryFinanceiro Category = "Financeiro/Vendas"
	CategorySuporte    Category = "Suporte Técnico"
	CategorySaudacao   Category = "Saudação"
	CategoryOutros     Category = "Outros"
)

// Confidence is the coarse bucket assigned to a classification.
type Confidence string

const (
	ConfidenceAlta  Confidence = "alta"
	ConfidenceMedia Confidence = "média"
	ConfidenceBaixa Confidence = "baixa"
	ConfidenceErro  Confidence = "erro"
)

// CategoryMeta holds the canned remediation texts owned by a category.
type CategoryMeta struct {
	SolucaoCliente string
	SolucaoTecnica string
}

// categoryMetadata is static process-wide configuration. Created once,
// never mutated.
var categoryMetadata = map[Category]CategoryMeta{
	CategoryFinanceiro: {
		SolucaoCliente: "Um consultor enviará uma proposta em breve.",
		SolucaoTecnica: "Verificar tabela de preços e encaminhar ao vendas.",
	},
	CategorySuporte: {
		SolucaoCliente: "Nossa equipe técnica já está analisando o problema.",
		SolucaoTecnica: "Verificar logs (Splunk) e abrir ticket Jira.",
	},
	CategorySaudacao: {
		SolucaoCliente: "Olá! Como podemos ajudar?",
		SolucaoTecnica: "Responder cordialmente.",
	},
	CategoryOutros: {
		SolucaoCliente: "Um atendente irá analisar sua mensagem.",
		SolucaoTecnica: "Triagem manual necessária.",
	},
}

// CandidateLabels returns the labels offered to the model. Outros is the
// universal fallback and is never a candidate.
func CandidateLabels() []string {
	return []string{
		string(CategoryFinanceiro),
		string(CategorySuporte),
		string(CategorySaudacao),
	}
}

// IsOperational reports whether a label represents an actionable customer
// need, as opposed to a greeting or the fallback.
func IsOperational(label string) bool {
	return label == string(CategoryFinanceiro) || label == string(CategorySuporte)
}

// CategoryFromLabel maps a model label to a Category. Anything outside the
// fixed set resolves to Outros.
func CategoryFromLabel(label string) Category {
	c := Category(label)
	if _, ok := categoryMetadata[c]; ok {
		return c
	}
	return CategoryOutros
}

// MetaFor returns the remediation texts for a category, falling back to
// the Outros texts for unknown values.
func MetaFor(c Category) CategoryMeta {
	if meta, ok := categoryMetadata[c]; ok {
		return meta
	}
	return categoryMetadata[CategoryOutros]
}
