package ptbr

// Locale tables for Brazilian Portuguese fake data. Kept small on purpose:
// realism here means shape and script (accented Latin), not census coverage.

var firstNames = []string{
	"Ana", "Beatriz", "Bruno", "Camila", "Carlos", "Cecília", "Daniel",
	"Eduardo", "Fernanda", "Gabriel", "Gustavo", "Helena", "Isabela", "João",
	"Juliana", "Larissa", "Leonardo", "Letícia", "Lucas", "Luiza", "Marcos",
	"Mariana", "Mateus", "Patrícia", "Paulo", "Rafael", "Renata", "Ricardo",
	"Sofia", "Thiago", "Vinícius", "Vitória",
}

var lastNames = []string{
	"Almeida", "Araújo", "Barbosa", "Cardoso", "Carvalho", "Castro", "Costa",
	"Dias", "Fernandes", "Ferreira", "Gomes", "Gonçalves", "Lima", "Lopes",
	"Martins", "Melo", "Moreira", "Nascimento", "Oliveira", "Pereira",
	"Ribeiro", "Rocha", "Rodrigues", "Santos", "Silva", "Souza", "Teixeira",
	"Vieira",
}

var companySuffixes = []string{"Ltda", "S.A.", "ME", "EIRELI", "e Filhos"}

var companyStems = []string{
	"Comercial", "Distribuidora", "Indústrias", "Atacado", "Importadora",
	"Transportes", "Construtora", "Tecnologia", "Alimentos", "Logística",
	"Consultoria", "Metalúrgica",
}

var cities = []string{
	"São Paulo", "Rio de Janeiro", "Belo Horizonte", "Curitiba",
	"Porto Alegre", "Salvador", "Fortaleza", "Recife", "Brasília", "Manaus",
	"Campinas", "Goiânia", "Belém", "São Luís", "Natal", "Florianópolis",
	"Vitória", "Uberlândia", "Sorocaba", "Ribeirão Preto",
}

var stateAbbrs = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA", "MT", "MS",
	"MG", "PA", "PB", "PR", "PE", "PI", "RJ", "RN", "RS", "RO", "RR", "SC",
	"SP", "SE", "TO",
}

var streetTypes = []string{"Rua", "Avenida", "Travessa", "Alameda", "Praça"}

var streetNames = []string{
	"das Flores", "XV de Novembro", "Sete de Setembro", "Tiradentes",
	"do Comércio", "Santos Dumont", "Getúlio Vargas", "das Acácias",
	"Marechal Deodoro", "São João", "Dom Pedro II", "da Independência",
}

var jobs = []string{
	"Analista Financeiro", "Engenheiro de Produção", "Vendedor",
	"Assistente Administrativo", "Gerente Comercial", "Técnico de Logística",
	"Coordenador de RH", "Desenvolvedor de Software", "Auxiliar de Estoque",
	"Contador", "Supervisor de Qualidade", "Comprador", "Motorista",
	"Atendente", "Diretor de Operações",
}

var words = []string{
	"estoque", "pedido", "entrega", "cliente", "produto", "fatura", "venda",
	"compra", "frete", "prazo", "lote", "nota", "desconto", "reajuste",
	"campanha", "orçamento", "setor", "turno", "meta", "relatório", "filial",
	"insumo", "contrato", "serviço", "manutenção", "expedição", "cobrança",
	"reembolso", "auditoria", "projeto",
}

var emailDomains = []string{
	"exemplo.com.br", "empresa.com.br", "correio.com.br", "mail.com.br",
}
