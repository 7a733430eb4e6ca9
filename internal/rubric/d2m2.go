package rubric

import "github.com/formativa/rubrica/internal/scoring"

// Dimensão 2, Categoria 2: estratégias pedagógicas e acompanhamento do
// percurso formativo. Fifteen items. Item 10 expands "Oral e Escrito" into
// both underlying formats, item 11 nests sub-options under the two product
// kinds, and item 13 scores 0.33 per seminar sphere below the full three.
func formD2M2() Form {
	return Form{
		Key:   "d2m2",
		Title: "Dimensão 2 - Categoria 2",
		Items: []Item{
			{
				ID:    "item1",
				Title: "Estratégias pedagógicas",
				Options: []Option{
					opt("1.1", "Sinalizam práticas que privilegiem a fruição e experimentação com linguagens e suas expressões por meio de atividades artísticas, como pintura, música, teatro e poesia"),
					opt("1.2", "Organizam sequências de atividades que proporcionam apreciar as diversas linguagens artísticas: arte, música, dança, teatro, artes visuais"),
					opt("1.3", "Sinalizam práticas para apreciar a literatura infantil em sua diversidade"),
					opt("1.4", "Sinalizam práticas para lidar com textos variados com o intuito de descobrir a estética presente na literatura infantil"),
					opt("1.5", "Sinalizam práticas para vivenciar a fantasia e a imaginação"),
					opt("1.6", "Organizam vivencias que possibilitem explorar e expressar suas ideias, emoções e experiências de forma criativa e pessoal"),
				},
				Rule: pairedLadderOfSix(),
			},
			{
				ID:    "item2",
				Title: "O planejamento prevê momentos que privilegiam a “Escuta democrática” como base para a reflexão da prática pedagógica",
				Options: []Option{
					opt("2.1", "Prevê momentos para apresentar as demandas e necessidades de formação e desenvolvimento profissional"),
					opt("2.2", "Apresenta flexibilidade no planejamento do percurso formativo para atender às demandas e necessidades dos cursistas"),
					opt("2.3", "Prevê momentos para troca de experiências exitosas"),
					opt("2.4", "Prevê momentos para levantar inquietações sobre o processo de alfabetização"),
					opt("2.5", "Privilegia momentos para compartilhamento de práticas sociais culturais"),
					opt("2.6", "Privilegia momentos de roda de conversas para conhecer, compartilhar e refletir sobre os conhecimentos prévios"),
				},
				Rule: pairedLadderOfSix(),
			},
			{
				ID:    "item3",
				Title: "Estratégias metodológicas visando à ampliação do repertório profissional",
				Options: []Option{
					opt("3.1", "Contemplam espaços dialógicos entre a prática pedagógica e os conteúdos previstos"),
					opt("3.2", "Preveem momentos de reflexão, pesquisa, ação, descoberta, organização, fundamentação e revisão e construção teórica"),
					opt("3.3", "Preveem o acompanhamento sistematizado da prática pedagógica"),
					opt("3.4", "Contemplam espaços dialógicos entre a prática pedagógica e os conteúdos previstos na perspectiva inclusiva, no âmbito da Educação do Campo"),
					opt("3.5", "Contemplam espaços dialógicos entre a prática pedagógica e os conteúdos previstos na perspectiva inclusiva, no âmbito da Educação Especial"),
					opt("3.6", "Contemplam espaços dialógicos entre a prática pedagógica e os conteúdos previstos na perspectiva inclusiva, no âmbito da Educação Indígena"),
					opt("3.7", "Preveem, a partir dos conteúdos, sugestões de mudanças no contexto das práticas sociais, visando à reflexão crítica, como também, à transformação dessas práticas"),
					opt("3.8", "Preveem um espaço dialógico que contemple a relação teoria e prática a partir do compartilhamento de questões, levantamento de respostas, de análises, validações entre pares, e sistematizações conceituais para lidar com as demandas identificadas no processo de alfabetização"),
					opt("3.9", "Preveem atividades que promovam a conscientização sobre a identidade como parte de uma comunidade profissional de leitores e escritores"),
				},
				Rule: first(
					when(countEq(0), 0),
					when(countEq(1), 0.25),
					when(countAtMost(4), 0.5),
					when(countAtMost(8), 0.75),
					when(countEq(9), 1),
				),
			},
			{
				ID:    "item4",
				Title: "As práticas pedagógicas",
				Options: []Option{
					opt("4.1", "Sinalizam o protagonismo dos profissionais da educação produzirem seus próprios planejamentos e recursos didáticos"),
					opt("4.2", "Preveem o processo criativo do trabalho docente, exerce o direito de pensar, elaborar, organizar e avaliar as suas ações no contexto escolar"),
					opt("4.3", "Preveem a análise crítica das atividades propostas em relação aos objetivos de aprendizagem"),
					opt("4.4", "Preveem a análise e escolha intencional dos objetivos de aprendizagem a partir das necessidades dos estudantes"),
					opt("4.5", "Preveem engajamento ético-político e estético dos profissionais da educação"),
					opt("4.6", "Preveem discussões sobre a equidade, diversidade, inclusão e justiça social"),
				},
				Rule: pairedLadderOfSix(),
			},
			{
				ID:    "item5",
				Title: "As práticas pedagógicas contemplam as concepções teóricos metodológicas indicadas para o ensino da leitura e da escrita das crianças a partir",
				Options: []Option{
					opt("5.1", "Do reconhecimento do estudante como usuário competente e participante efetivo de práticas sociais que envolvem a leitura e a escrita"),
					opt("5.2", "Da construção de leitores ativos que percebem a leitura como forma de comunicar significados e de construir ativamente significados nos textos"),
					opt("5.3", "De atividades que condizem com textos que circulam em um contexto real"),
				},
				Rule: ladderOfThree(),
			},
			{
				ID:    "item6",
				Title: "Atividades pedagógicas para ampliação do repertório didático",
				Options: []Option{
					opt("6.1", "Prevê oficinas e/ou outras atividades semelhantes voltadas para as práticas pedagógicas"),
					opt("6.2", "Prevê estratégias colaborativas para refletir sobre atividades práticas em sala de aula"),
					opt("6.3", "Prevê visibilidade às diferentes realidades do cotidiano escolar para refletir, avaliar e trocar experiências entre pares"),
					opt("6.4", "Prevê a elaboração individual e/ou coletiva de instrumentos de trabalho pedagógico: Projetos didáticos"),
					opt("6.5", "Prevê a elaboração individual e/ou coletiva de instrumentos de trabalho pedagógico: Sequências didáticas"),
					opt("6.6", "Prevê a elaboração individual e/ou coletiva de instrumentos de trabalho pedagógico: Pautas de reunião"),
					opt("6.7", "Prevê a elaboração individual e/ou coletiva de instrumentos de trabalho pedagógico: Instrumentos de observação"),
					opt("6.8", "Prevê a elaboração individual e/ou coletiva de instrumentos de trabalho pedagógico: Registro da prática"),
					opt("6.9", "Prevê a elaboração individual e/ou coletiva de instrumentos de trabalho pedagógico: Jogos pedagógicos inéditos"),
					opt("6.10", "Prevê a elaboração individual e/ou coletiva de instrumentos de trabalho pedagógico: Recursos pedagógicos inéditos"),
					opt("6.11", "Prevê a elaboração individual e/ou coletiva de instrumentos de trabalho pedagógico: Outros"),
				},
				Rule: first(
					when(countEq(0), 0),
					when(countEq(1), 0.25),
					when(countAtMost(5), 0.5),
					when(countAtMost(10), 0.75),
					when(countEq(11), 1),
				),
			},
			{
				ID:    "item7",
				Title: "As atividades preveem a discussão e proposição de materiais, recursos e instrumentos acessíveis na perspectiva",
				Options: []Option{
					opt("7.1", "Adaptativa contemplando cada deficiência e/ou TEA"),
					opt("7.2", "Desenho Universal para as aprendizagens"),
				},
				Rule: first(
					when(countEq(0), 0),
					when(countEq(1), 0.75),
					when(countEq(2), 1),
				),
			},
			{
				ID:    "item8",
				Title: "Estratégias didáticas para o acompanhamento das aprendizagens dos profissionais da Educação",
				Options: []Option{
					opt("8.1", "No decorrer do processo formativo privilegiam momentos de reflexão individual"),
					opt("8.2", "No decorrer do processo formativo privilegiam momentos de reflexão por meio de uma avaliação coletiva"),
					opt("8.3", "Registros sobre as percepções dos encontros formativos"),
					opt("8.4", "Registros indicativos de próximas temáticas a serem discutidas"),
					opt("8.5", "Momentos coletivos para compartilhar as experiências do processo formativo"),
					opt("8.6", "Autoavaliação"),
					opt("8.7", "Outras estratégias"),
				},
				Rule: first(
					when(countEq(0), 0),
					when(countEq(1), 0.25),
					when(countAtMost(3), 0.5),
					when(countAtMost(6), 0.75),
					when(countEq(7), 1),
				),
			},
			{
				ID:    "item9",
				Title: "Cronograma para o retorno dos feedbacks",
				Options: []Option{
					opt("9.1", "Semanal"),
					opt("9.2", "Quinzenal"),
					opt("9.3", "Mensal"),
					opt("9.4", "Semestral"),
					opt("9.5", "Ao final de cada módulo"),
				},
				Behavior: scoring.Behavior{SingleSelect: true},
				Rule: first(
					when(countEq(0), 0),
					when(has("9.4"), 0.25),
					when(anyOf("9.3", "9.5"), 0.5),
					when(has("9.2"), 0.75),
					when(has("9.1"), 1),
				),
			},
			{
				ID:    "item10",
				Title: "Formatos para as devolutivas sobre o processo de aprendizagem dos profissionais da Educação",
				Options: []Option{
					opt("10.1", "Oral"),
					opt("10.2", "Escrito"),
					opt("10.3", "Oral e Escrito"),
				},
				// Checking the combined format pulls in both basic formats.
				Behavior: scoring.Behavior{Implies: map[string][]string{
					"10.3": {"10.1", "10.2"},
				}},
				Rule: first(
					when(countEq(0), 0),
					when(hasAll("10.1", "10.2", "10.3"), 1),
					when(hasAll("10.1", "10.2"), 0.75),
					when(anyOf("10.1", "10.2"), 0.5),
				),
			},
			{
				ID:    "item11",
				Title: "Formas de registro e de sistematização das aprendizagens dos profissionais da educação",
				Options: []Option{
					{ID: "11.1", Label: "Produtos individuais", Children: []Option{
						opt("11.2", "Diário profissional formativo"),
						opt("11.3", "Portfólio"),
						opt("11.4", "Outras formas de registro"),
					}},
					{ID: "11.5", Label: "Produtos compartilhados entre os pares", Children: []Option{
						opt("11.6", "Caderno compartilhado de registros"),
						opt("11.7", "Caderno compartilhado de sugestões de práticas pedagógicas e gestão"),
						opt("11.8", "Caderno compartilhado de resenhas de textos, filmes ou outras indicações de ampliação de repertório"),
						opt("11.9", "Coletânea de relatos de práticas ou artigos"),
						opt("11.10", "Coletânea de sequência didáticas e projetos didáticos desenvolvidos pelos profissionais da educação participantes"),
						opt("11.11", "Coletâneas de pautas ou reuniões de formação e de gestão escolar, com comentários analíticos do grupo"),
					}},
				},
				Rule: first(
					when(countEq(0), 0),
					when(countAtMost(3), 0.25),
					when(countAtMost(5), 0.5),
					when(countAtMost(10), 0.75),
					when(countEq(11), 1),
				),
			},
			{
				ID:    "item12",
				Title: "Formas de disseminação e compartilhamento das aprendizagens e dos resultados do processo formativo",
				Options: []Option{
					opt("12.1", "Modalidade: Presencial"),
					opt("12.2", "Modalidade: Virtual"),
					opt("12.3", "Modalidade: Híbrida"),
					opt("12.4", "Modalidade: Não há previsão para a disseminação e compartilhamento das aprendizagens e resultados"),
				},
				Behavior: scoring.Behavior{SingleSelect: true},
				Rule: first(
					when(has("12.1"), 0.75),
					when(has("12.2"), 0.5),
					when(has("12.3"), 1),
					when(has("12.4"), 0),
				),
			},
			{
				ID:    "item13",
				Title: "Formas de disseminação e compartilhamento das aprendizagens e dos resultados do processo formativo",
				Options: []Option{
					opt("13.1", "Os seminários serão realizados contemplando as esferas da federação: Seminários municipais"),
					opt("13.2", "Os seminários serão realizados contemplando as esferas da federação: Seminários regionais"),
					opt("13.3", "Os seminários serão realizados contemplando as esferas da federação: Seminários estaduais"),
					opt("13.4", "Modalidade: Não há previsão para a disseminação e compartilhamento das aprendizagens e resultados"),
				},
				Behavior: scoring.Behavior{VetoID: "13.4"},
				Rule: first(
					when(has("13.4"), 0),
					when(countEq(3), 1),
					perCount(countAtLeast(1), 0.33),
				),
			},
			{
				ID:    "item14",
				Title: "Previsão de formatos para a disseminação e compartilhamento das aprendizagens consolidadas",
				Options: []Option{
					opt("14.1", "Painéis"),
					opt("14.2", "Grupos de discussão"),
					opt("14.3", "Oficinas"),
					opt("14.4", "Debates"),
					opt("14.5", "Mesas Temáticas"),
					opt("14.6", "Conferências"),
					opt("14.7", "Outros formatos"),
				},
				Rule: first(
					when(countEq(0), 0),
					when(countAtMost(2), 0.25),
					when(countAtMost(4), 0.5),
					when(countAtMost(6), 0.75),
					when(countEq(7), 1),
				),
			},
			{
				ID:    "item15",
				Title: "A análise dos Livros Didáticos objetiva",
				Options: []Option{
					opt("15.1", "Verificar a consonância com os referenciais curriculares dos territórios"),
					opt("15.2", "Identificar a conformidade com a perspectiva inclusiva"),
					opt("15.3", "Analisar se a proposta reconhece a alfabetização como processo discursivo"),
					opt("15.4", "Discutir o protagonismo docente para selecionar e adaptar os temas e as atividades propostas nos livros de acordo com as necessidades dos estudantes"),
					opt("15.5", "Refletir sobre o planejamento e criação de atividades complementares que estimulem a reflexão e o debate"),
				},
				Rule: first(
					when(countEq(0), 0),
					when(countEq(1), 0.25),
					when(countAtMost(3), 0.5),
					when(countEq(4), 0.75),
					when(countEq(5), 1),
				),
			},
		},
	}
}

// 0/0.25/0.5/0.75/1 ladder over six options, stepping every two selections.
func pairedLadderOfSix() scoring.Rule {
	return first(
		when(countEq(0), 0),
		when(countEq(1), 0.25),
		when(countAtMost(3), 0.5),
		when(countAtMost(5), 0.75),
		when(countEq(6), 1),
	)
}
