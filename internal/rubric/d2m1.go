package rubric

import "github.com/formativa/rubrica/internal/scoring"

// Dimensão 2, Categoria 1: análise do plano do curso de formação. Seventeen
// items, mostly count ladders over the selected options. The ladders on items
// 5, 6 and 15 reproduce the published scoring tables verbatim, including their
// gaps; Lint reports those gaps instead of silently correcting them.
func formD2M1() Form {
	return Form{
		Key:   "d2m1",
		Title: "Dimensão 2 - Categoria 1",
		Items: []Item{
			{
				ID:    "item1",
				Title: "Apresenta os tópicos para a formatação do curso",
				Options: []Option{
					opt("1.1", "Título do curso"),
					opt("1.2", "Carga Horária (encontros coletivos presenciais e atividades diversificadas)"),
					opt("1.3", "Modalidade"),
					opt("1.4", "Objetivo Geral"),
					opt("1.5", "Objetivos de Aprendizagem e Desenvolvimento Profissional"),
					opt("1.6", "Fundamentação Teórica"),
					opt("1.7", "Estratégias Metodológicas"),
					opt("1.8", "Formas de avaliação e certificação"),
					opt("1.9", "Instituição, entidade ou equipe responsável pela formação"),
					opt("1.10", "Produtos Finais"),
					opt("1.11", "Cronograma"),
				},
				Rule: first(
					when(countEq(0), 0),
					when(countAtMost(4), 0.25),
					when(countAtMost(7), 0.5),
					when(countBelow(11), 0.75),
					when(countEq(11), 1),
				),
			},
			{
				ID:    "item2",
				Title: "Experiência em alfabetização e letramento",
				Options: []Option{
					opt("2.1", "Atuação em turmas de 1° e 2° anos do Ensino Fundamental"),
					opt("2.2", "Cursos e extensão e/ou pós-graduação em alfabetização e letramento"),
					opt("2.3", "Não apresenta experiência em alfabetização e letramento"),
				},
				Behavior: scoring.Behavior{VetoID: "2.3"},
				Rule:     pairWithVeto("2.3"),
			},
			{
				ID:    "item3",
				Title: "Objetivo geral",
				Options: []Option{
					opt("3.1", "Apresenta clareza e alinhamento às diretrizes do Compromisso Nacional Criança Alfabetizada"),
					opt("3.2", "Sinaliza a organização do percurso a partir das demandas e necessidades do público-alvo"),
					opt("3.3", "Sinaliza a articulação teórica com a ação crítica e reflexiva sobre a prática cotidiana"),
					opt("3.4", "Sinaliza o reconhecimento dos direitos de aprendizagem do estudante"),
					opt("3.5", "Sinaliza o papel do professor como mediador desse processo"),
					opt("3.6", "Sinaliza a intencionalidade pedagógica como tomada de decisão fundamental na mobilização dos saberes"),
				},
				Rule: ladderOfSix(),
			},
			{
				ID:    "item4",
				Title: "Objetivos de aprendizagem",
				Options: []Option{
					opt("4.1", "Os objetivos de aprendizagem preveem a apropriação e a ressignificação dos saberes sobre a alfabetização a partir de situações didáticas reflexivas sobre a prática cotidiana dos profissionais da educação"),
					opt("4.2", "Indicam objetivos de aprendizagem que contemplam a reflexão sobre: O caráter discursivo e enunciativo da língua"),
					opt("4.3", "Indicam objetivos de aprendizagem que contemplam a reflexão sobre: A função social da leitura e da escrita"),
					opt("4.4", "Indicam objetivos de aprendizagem que contemplam a reflexão sobre: A compreensão da multidimensionalidade do processo de alfabetização: linguística, cognitiva, sociocultural, afetiva e tecnológica"),
					opt("4.5", "Indicam objetivos de aprendizagem que contemplam a reflexão sobre: O reconhecimento e compromisso ético-político para o enfretamento e proposições para superar questões relativas ao racismo, a aporofobia e ao capacitismo"),
					opt("4.6", "Indicam os objetivos de aprendizagem das unidades temáticas ou módulos"),
				},
				Rule: ladderOfSix(),
			},
			{
				ID:    "item5",
				Title: "Apresenta ampliação do repertório como elemento estruturante da reflexão crítica e do aprofundamento da consciência profissional",
				Options: []Option{
					opt("5.1", "Apresenta pesquisas no âmbito da alfabetização e letramento: Em Educação"),
					opt("5.2", "Apresenta pesquisas no âmbito da alfabetização e letramento: Desenvolvidas no Território"),
					opt("5.3", "Apresenta pesquisas no âmbito da alfabetização e letramento: Em áreas afins: Linguística, Psicologia, entre outras"),
					opt("5.4", "Apresenta pesquisas no âmbito da alfabetização e letramento: Em áreas afins: No âmbito nacional"),
					opt("5.5", "Apresenta pesquisas no âmbito da alfabetização e letramento: Em áreas afins: No âmbito internacional"),
					opt("5.6", "Apresenta revisão teórica e pesquisas anteriores relacionadas ao tema"),
					opt("5.7", "Inclui debates e tendências na área"),
					opt("5.8", "Apresenta evidências ou pesquisas que subsidiam as teorias e/ou conceitos abordados"),
					opt("5.9", "Apresenta pesquisas sobre a alfabetização na perspectiva do letramento no contexto inclusivo, no âmbito da: Educação Especial"),
					opt("5.10", "Apresenta pesquisas sobre a alfabetização na perspectiva do letramento no contexto inclusivo, no âmbito da: Educação do Campo"),
					opt("5.11", "Apresenta pesquisas sobre a alfabetização na perspectiva do letramento no contexto inclusivo, no âmbito da: Educação Indígena"),
				},
				// The published table tops out at 10 of 11 options. Selecting
				// all 11 falls through to 0; Lint flags this.
				Rule: first(
					when(countEq(0), 0),
					when(countAtMost(3), 0.25),
					when(countAtMost(6), 0.5),
					when(countBelow(10), 0.75),
					when(countEq(10), 1),
				),
			},
			{
				ID:    "item6",
				Title: "Apresenta coerência",
				Options: []Option{
					opt("6.1", "Premissas epistemológicas do processo de alfabetização do CNCA"),
					opt("6.2", "Diretrizes Nacionais da Educação Básica"),
					opt("6.3", "Diretrizes curriculares do território"),
				},
				// Clause order follows the published table. The 6.1 presence
				// check fires before the three-of-three clause, so selecting
				// everything scores 0.5; Lint flags the unreachable top tier.
				Rule: first(
					when(countEq(0), 0),
					when(countEq(2), 0.75),
					when(has("6.1"), 0.5),
					when(countEq(3), 1),
				),
			},
			{
				ID:    "item7",
				Title: "Apresenta a diversidade de abordagens teóricas em alfabetização e letramento",
				Options: []Option{
					opt("7.1", "Apresenta histórico sobre o conceito de alfabetização e embasamento teórico das metodologias de ensino"),
					opt("7.2", "Fundamenta a escolha epistemológica que embasa os processos de alfabetização"),
					opt("7.3", "Apresenta e compara as definições de literacia, letramento e multiletramentos"),
					opt("7.4", "Apresenta reflexões e proposições sobre a alfabetização, na perspectiva do letramento, no contexto inclusivo, no âmbito da: Educação Especial"),
					opt("7.5", "Apresenta reflexões e proposições sobre a alfabetização, na perspectiva do letramento, no contexto inclusivo, no âmbito da: Educação do Campo"),
					opt("7.6", "Apresenta reflexões e proposições sobre a alfabetização, na perspectiva do letramento, no contexto inclusivo, no âmbito da: Educação Indígena"),
				},
				Rule: first(
					when(countEq(0), 0),
					when(countAtMost(2), 0.25),
					when(countAtMost(3), 0.5),
					when(countBelow(6), 0.75),
					when(countEq(6), 1),
				),
			},
			{
				ID:    "item8",
				Title: "Aponta as concepções sobre o papel do professor e do estudante no processo de ensino e aprendizagem",
				Options: []Option{
					opt("8.1", "Papel protagonista do professor"),
					opt("8.2", "Papel ativo do estudante, sujeito cognoscente"),
					opt("8.3", "Relação dialógica entre professor e estudante"),
					opt("8.4", "Outras concepções sobre o papel do professor e do estudante e relação pedagógica"),
				},
				Rule: ladderOfFour(),
			},
			{
				ID:    "item9",
				Title: "Apresenta e analisa os tipos de avaliações e fundamenta a correlação de cada uma com as tomadas de decisões pedagógicas",
				Options: []Option{
					opt("9.1", "Diagnóstica"),
					opt("9.2", "Somativa ou classificatória"),
					opt("9.3", "Formativa ou qualitativa"),
					opt("9.4", "Autoavaliação"),
				},
				Rule: ladderOfFour(),
			},
			{
				ID:    "item10",
				Title: "Reconhece os níveis de avaliação educacional e prevê o uso dos resultados como base para a reorganização dos objetivos de ensino e aprendizagem",
				Options: []Option{
					opt("10.1", "Avaliação da aprendizagem"),
					opt("10.2", "Avaliação institucional"),
					opt("10.3", "Avaliação de larga escala"),
				},
				Rule: ladderOfThree(),
			},
			{
				ID:    "item11",
				Title: "Coerência dos conteúdos",
				Options: []Option{
					opt("11.1", "Apresentam coerência com os objetivos (Geral e de Aprendizagem)"),
					opt("11.2", "Apresentam coerência com a fundamentação teórica"),
					opt("11.3", "Apresentam coerência sistêmica com a proposta curricular e diretrizes estabelecidas pela rede de ensino"),
				},
				Rule: ladderOfThree(),
			},
			{
				ID:    "item12",
				Title: "Organização dos conteúdos",
				Options: []Option{
					opt("12.1", "Organizado em módulos e unidades"),
					opt("12.2", "Apresentam adequação à carga horária total"),
					opt("12.3", "Prevê uma distribuição equitativa"),
				},
				Rule: ladderOfThree(),
			},
			{
				ID:    "item13",
				Title: "Conteúdos selecionados estão alinhados",
				Options: []Option{
					opt("13.1", "As premissas epistemológicas do processo de alfabetização do CNCA"),
					opt("13.2", "As Diretrizes Nacionais da Educação Básica"),
					opt("13.3", "As Diretrizes curriculares do território"),
				},
				Rule: ladderOfThree(),
			},
			{
				ID:    "item14",
				Title: "Os conteúdos contemplam as concepções de alfabetização e letramento",
				Options: []Option{
					opt("14.1", "Indicam o reconhecimento da alfabetização como direito constituído para todos os estudantes numa perspectiva inclusiva"),
					opt("14.2", "Indicam o reconhecimento que toda criança é capaz de aprender. Entende o estudante como um sujeito cognoscente e deve ser apoiado em suas necessidades"),
					opt("14.3", "Indicam o reconhecimento da alfabetização como processo discursivo e de caráter enunciativo"),
					opt("14.4", "Indicam o reconhecimento dos aspectos centrais no processo de ensino e aprendizagem: afetividade"),
					opt("14.5", "Indicam o reconhecimento dos aspectos centrais no processo de ensino e aprendizagem: ludicidade"),
					opt("14.6", "Indicam o reconhecimento dos aspectos centrais no processo de ensino e aprendizagem: intencionalidade pedagógica"),
				},
				Rule: first(
					when(countEq(0), 0),
					when(countEq(1), 0.5),
					when(countBelow(6), 0.75),
					when(countEq(6), 1),
				),
			},
			{
				ID:    "item15",
				Title: "Os conteúdos elencados contemplam as temáticas",
				Options: []Option{
					opt("15.1", "Práticas de linguagem: Oralidade, Leitura e escuta, Escrita/produção de texto, Análise linguística/semiótica"),
					opt("15.2", "Compreensão do Sistema de Escrita Alfabética"),
					opt("15.3", "Compreensão da Consciência Fonológica"),
					opt("15.4", "Sinalizam a apropriação da leitura e da escrita atrelado ao uso competente nas práticas sociais e a diversidade de gêneros discursivos"),
					opt("15.5", "A formação de leitor competente, a mobilização das estratégias cognitivas de leitura: objetiva, inferencial e avaliativa"),
					opt("15.6", "A escrita/produção de textos orais e escritos"),
					opt("15.7", "A análise linguística/semiótica: Reflexões conceituais e didáticas a partir da perspectiva dos multiletramentos"),
					opt("15.8", "Preveem articulação conceitual e práticas pedagógicas entre a alfabetização, letramento e ludicidade"),
					opt("15.9", "Abordam questões sobre a identidade, necessidades e características linguístico-culturais de crianças que não têm o português como língua materna"),
					opt("15.10", "Preveem reflexões e proposições sobre a alfabetização e letramento no contexto inclusivo, no âmbito da: Educação Especial"),
					opt("15.11", "Preveem reflexões e proposições sobre a alfabetização e letramento no contexto inclusivo, no âmbito da: Educação do Campo"),
					opt("15.12", "Preveem reflexões e proposições sobre a alfabetização e letramento no contexto inclusivo, no âmbito da: Educação Indígena"),
				},
				// 9 to 11 selections score 0 in the published table; Lint
				// flags the gap.
				Rule: first(
					when(countEq(0), 0),
					when(countEq(1), 0.25),
					when(countAtMost(5), 0.5),
					when(countBelow(9), 0.75),
					when(countEq(12), 1),
				),
			},
			{
				ID:    "item16",
				Title: "Os conteúdos contemplam a temática da avaliação e fundamenta a correlação de cada uma com as tomadas de decisões pedagógicas",
				Options: []Option{
					opt("16.1", "Diagnóstica"),
					opt("16.2", "Somativa ou classificatória"),
					opt("16.3", "Formativa ou qualitativa"),
					opt("16.4", "Autoavaliação"),
				},
				Rule: ladderOfFour(),
			},
			{
				ID:    "item17",
				Title: "Apresentam os níveis de avaliação educacional e preveem o uso dos resultados como base para a reorganização dos objetivos de ensino e aprendizagem",
				Options: []Option{
					opt("17.1", "Avaliação da aprendizagem"),
					opt("17.2", "Avaliação institucional"),
					opt("17.3", "Avaliação de larga escala"),
				},
				Rule: ladderOfThree(),
			},
		},
	}
}

// count ladders shared by several items

func ladderOfThree() scoring.Rule {
	return first(
		when(countEq(0), 0),
		when(countEq(1), 0.5),
		when(countEq(2), 0.75),
		when(countEq(3), 1),
	)
}

func ladderOfFour() scoring.Rule {
	return first(
		when(countEq(0), 0),
		when(countEq(1), 0.25),
		when(countAtMost(2), 0.5),
		when(countAtMost(3), 0.75),
		when(countEq(4), 1),
	)
}

func ladderOfSix() scoring.Rule {
	return first(
		when(countEq(0), 0),
		when(countAtMost(2), 0.25),
		when(countAtMost(3), 0.5),
		when(countAtMost(5), 0.75),
		when(countEq(6), 1),
	)
}
