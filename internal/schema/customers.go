package schema

// Column names of the clientes table.
const (
	ColCPF                   = "cpf"
	ColPrivate               = "private"
	ColIncomplete            = "incompleto"
	ColLastPurchaseDate      = "data_ultima_compra"
	ColAverageTicket         = "ticket_medio"
	ColAverageTicketLastSale = "ticket_medio_ultima_compra"
	ColMostFrequentStore     = "loja_mais_frequente"
	ColLastPurchaseStore     = "loja_da_ultima_compra"
	ColValid                 = "valido"
)

// IdentifierWidth is the width of the identifier columns, which is the length
// of a masked CNPJ.
const IdentifierWidth = 18

// CustomersVersion is bumped whenever the Customers layout changes.
const CustomersVersion = 1

// Customers describes the clientes table. Source fields appear in the order
// they occur in the input file.
var Customers = Table{
	Name:    "clientes",
	Version: CustomersVersion,
	Fields: []FieldSpec{
		{Name: ColCPF, Type: FieldText, Size: IdentifierWidth, PrimaryKey: true},
		{Name: ColPrivate, Type: FieldInt},
		{Name: ColIncomplete, Type: FieldInt},
		{Name: ColLastPurchaseDate, Type: FieldDate},
		{Name: ColAverageTicket, Type: FieldNumeric, Precision: 16, Scale: 2},
		{Name: ColAverageTicketLastSale, Type: FieldNumeric, Precision: 16, Scale: 2},
		{Name: ColMostFrequentStore, Type: FieldText, Size: IdentifierWidth},
		{Name: ColLastPurchaseStore, Type: FieldText, Size: IdentifierWidth},
		{Name: ColValid, Type: FieldFlag, Derived: true},
	},
}
