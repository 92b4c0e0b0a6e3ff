package models

// CategoryKey identifies a category in the catalog. The set of keys is
// closed: a record referencing a key outside the catalog violates a system
// invariant and is not a recoverable runtime condition.
type CategoryKey string

const (
	CategoryFood           CategoryKey = "food"
	CategoryUber           CategoryKey = "uber"
	CategorySalary         CategoryKey = "salary"
	CategoryWater          CategoryKey = "water"
	CategoryElectricity    CategoryKey = "electricity"
	CategoryPets           CategoryKey = "pets"
	CategoryPharmacy       CategoryKey = "pharmacy"
	CategoryCar            CategoryKey = "car"
	CategorySchool         CategoryKey = "school"
	CategoryInternet       CategoryKey = "internet"
	CategoryCardNubankJu   CategoryKey = "card"
	CategoryCardCarrefour  CategoryKey = "card1"
	CategoryCardNubankKbca CategoryKey = "card2"
	CategoryCardAssai      CategoryKey = "card3"
	CategoryHealthPlan     CategoryKey = "healthplan"
	CategorySupplies       CategoryKey = "supplies"
	CategoryLaboratory     CategoryKey = "laboratory"
	CategoryVaccines       CategoryKey = "vaccines"
	CategoryTransport      CategoryKey = "transport"
	CategoryClothes        CategoryKey = "clothes"
	CategoryGifts          CategoryKey = "gifts"
	CategoryPersonalCare   CategoryKey = "personal_care"
	CategorySchoolMaterial CategoryKey = "school_material"
)

// Category carries the display metadata for a category and whether records
// under it count as expense or income.
type Category struct {
	Title   string `json:"title"`
	Color   string `json:"color"`
	Expense bool   `json:"expense"`
}

// Catalog maps category keys to their metadata. It is supplied once at
// start-up and treated as read-only everywhere.
type Catalog map[CategoryKey]Category

// Has reports whether the key exists in the catalog.
func (c Catalog) Has(key CategoryKey) bool {
	_, ok := c[key]
	return ok
}

// DefaultCatalog returns the built-in category table.
func DefaultCatalog() Catalog {
	return Catalog{
		CategoryFood:           {Title: "Alimentação", Color: "blue", Expense: true},
		CategoryUber:           {Title: "Uber", Color: "blue", Expense: true},
		CategorySalary:         {Title: "Salário", Color: "green", Expense: false},
		CategoryWater:          {Title: "Sabesp", Color: "blue", Expense: true},
		CategoryElectricity:    {Title: "Eletropaulo", Color: "blue", Expense: true},
		CategoryPets:           {Title: "Pets", Color: "blue", Expense: true},
		CategoryPharmacy:       {Title: "Farmácia", Color: "blue", Expense: true},
		CategoryCar:            {Title: "Carro", Color: "blue", Expense: true},
		CategorySchool:         {Title: "Escola", Color: "blue", Expense: true},
		CategoryInternet:       {Title: "Claro", Color: "blue", Expense: true},
		CategoryCardNubankJu:   {Title: "Cartão Nubank Ju", Color: "purple", Expense: true},
		CategoryCardCarrefour:  {Title: "Cartão Carrefour", Color: "purple", Expense: true},
		CategoryCardNubankKbca: {Title: "Cartão Nubank Kbça", Color: "purple", Expense: true},
		CategoryCardAssai:      {Title: "Cartão Assaí", Color: "purple", Expense: true},
		CategoryHealthPlan:     {Title: "Plano de Saúde", Color: "blue", Expense: true},
		CategorySupplies:       {Title: "Insumos Ju", Color: "blue", Expense: true},
		CategoryLaboratory:     {Title: "Laboratório", Color: "blue", Expense: true},
		CategoryVaccines:       {Title: "Vacinas", Color: "blue", Expense: true},
		CategoryTransport:      {Title: "Transporte", Color: "blue", Expense: true},
		CategoryClothes:        {Title: "Vestuário", Color: "blue", Expense: true},
		CategoryGifts:          {Title: "Presentes", Color: "blue", Expense: true},
		CategoryPersonalCare:   {Title: "Cuidados Pessoais", Color: "blue", Expense: true},
		CategorySchoolMaterial: {Title: "Material Escolar", Color: "blue", Expense: true},
	}
}
