package generators

var firstNames = []string{
	"Ana", "Beatriz", "Bruna", "Camila", "Carolina", "Daniela", "Fernanda", "Gabriela",
	"Isabela", "Juliana", "Larissa", "Letícia", "Luana", "Mariana", "Natália", "Patrícia",
	"Rafaela", "Sofia", "Tatiane", "Vitória", "André", "Antônio", "Bruno", "Carlos",
	"Daniel", "Eduardo", "Felipe", "Gabriel", "Gustavo", "Henrique", "João", "José",
	"Leonardo", "Lucas", "Marcelo", "Mateus", "Paulo", "Pedro", "Rafael", "Thiago",
}

var lastNames = []string{
	"Almeida", "Alves", "Araújo", "Barbosa", "Barros", "Batista", "Cardoso", "Carvalho",
	"Castro", "Costa", "Dias", "Fernandes", "Ferreira", "Gomes", "Lima", "Lopes",
	"Machado", "Marques", "Martins", "Melo", "Mendes", "Moreira", "Nascimento", "Oliveira",
	"Pereira", "Ribeiro", "Rocha", "Rodrigues", "Santos", "Silva", "Soares", "Souza",
	"Teixeira", "Vieira",
}

var cities = []string{
	"São Paulo", "Rio de Janeiro", "Belo Horizonte", "Salvador", "Fortaleza", "Brasília",
	"Curitiba", "Recife", "Porto Alegre", "Manaus", "Belém", "Goiânia", "Guarulhos",
	"Campinas", "São Luís", "Maceió", "Natal", "Teresina", "Campo Grande", "João Pessoa",
	"Florianópolis", "Vitória", "Cuiabá", "Aracaju", "Londrina", "Joinville", "Uberlândia",
	"Ribeirão Preto", "Sorocaba", "Niterói",
}

var states = []string{
	"Acre", "Alagoas", "Amapá", "Amazonas", "Bahia", "Ceará", "Distrito Federal",
	"Espírito Santo", "Goiás", "Maranhão", "Mato Grosso", "Mato Grosso do Sul",
	"Minas Gerais", "Pará", "Paraíba", "Paraná", "Pernambuco", "Piauí", "Rio de Janeiro",
	"Rio Grande do Norte", "Rio Grande do Sul", "Rondônia", "Roraima", "Santa Catarina",
	"São Paulo", "Sergipe", "Tocantins",
}

var streetPrefixes = []string{"Rua", "Avenida", "Travessa", "Alameda", "Praça", "Rodovia"}

var streetNames = []string{
	"das Flores", "Sete de Setembro", "XV de Novembro", "Tiradentes", "Santos Dumont",
	"Getúlio Vargas", "Dom Pedro II", "da Liberdade", "Marechal Deodoro", "São João",
	"Rio Branco", "Duque de Caxias", "Barão do Rio Branco", "Independência", "Brasil",
}

var companySuffixes = []string{"Ltda.", "S.A.", "e Filhos", "EIRELI", "ME", "Comércio", "Serviços"}

var areaCodes = []int{
	11, 12, 13, 14, 15, 16, 17, 18, 19, 21, 22, 24, 27, 28, 31, 32, 33, 34, 35, 37, 38,
	41, 42, 43, 44, 45, 46, 47, 48, 49, 51, 53, 54, 55, 61, 62, 63, 64, 65, 66, 67, 68,
	69, 71, 73, 74, 75, 77, 79, 81, 82, 83, 84, 85, 86, 87, 88, 89, 91, 92, 93, 94, 95,
	96, 97, 98, 99,
}

const (
	labelYes = "Sim"
	labelNo  = "Não"
)
