package rubric

import "github.com/formativa/rubrica/internal/scoring"

// Estrutura Formativa 2: variante avançada da estrutura formativa. Exercises
// the remaining rule shapes: an equal-weight ladder where every option counts
// the same, sub-item means over disjoint option groups, a nested hierarchy,
// and a five-point rating select.
func formEF2() Form {
	return Form{
		Key:   "ef2",
		Title: "Estrutura Formativa 2",
		Items: []Item{
			{
				ID:    "item1",
				Title: "Alcance da formação",
				Options: []Option{
					opt("1.1", "Docentes alfabetizadores do 1° e 2° anos"),
					opt("1.2", "Docentes dos 3° ao 5° anos"),
					opt("1.3", "Coordenadores pedagógicos"),
					opt("1.4", "Gestores escolares"),
					opt("1.5", "Equipes técnicas das secretarias"),
					opt("1.6", "Profissionais de apoio à inclusão"),
					opt("1.7", "Demais profissionais da unidade escolar"),
				},
				Rule: first(
					when(countEq(0), 0),
					when(countEq(1), 0.25),
					when(countAtMost(3), 0.5),
					when(countAtMost(5), 0.75),
					when(countAtMost(7), 1),
				),
			},
			{
				ID:    "item2",
				Title: "Planejamento do percurso formativo",
				Options: []Option{
					opt("2.1", "Apresenta plano de curso consolidado"),
					opt("2.2", "Prevê encontros coletivos regulares"),
					opt("2.3", "Prevê atividades assíncronas estruturadas"),
					opt("2.4", "Prevê acompanhamento individualizado dos cursistas"),
					opt("2.5", "Prevê instrumentos de registro do percurso"),
				},
				// Mean of the plan presence check (2.1) and the coverage
				// ladder over the four remaining provisions.
				Rule: meanOf(
					first(when(has("2.1"), 1)),
					first(
						when(hasAll("2.2", "2.3", "2.4", "2.5"), 1),
						when(anyOf("2.4", "2.5"), 0.75),
						when(anyOf("2.2", "2.3"), 0.5),
					),
				),
			},
			{
				ID:    "item3",
				Title: "Materiais e recursos formativos",
				Options: []Option{
					{ID: "3.1", Label: "Materiais impressos", Children: []Option{
						opt("3.2", "Cadernos de estudo dos cursistas"),
						opt("3.3", "Guias de mediação para formadores"),
					}},
					{ID: "3.4", Label: "Recursos digitais", Children: []Option{
						opt("3.5", "Ambiente virtual de aprendizagem"),
						opt("3.6", "Videoteca de práticas pedagógicas"),
						opt("3.7", "Banco de atividades adaptáveis"),
					}},
				},
				// Each branch of the hierarchy scored on its own, item score
				// is the mean of the two.
				Rule: meanOf(
					first(
						when(hasAll("3.1", "3.2", "3.3"), 1),
						when(all(has("3.1"), countAtLeast(2)), 0.75),
						when(has("3.1"), 0.5),
						when(countAtLeast(1), 0.25),
					),
					first(
						when(hasAll("3.4", "3.5", "3.6", "3.7"), 1),
						when(all(has("3.4"), countAtLeast(3)), 0.75),
						when(has("3.4"), 0.5),
						when(countAtLeast(1), 0.25),
					),
				),
			},
			{
				ID:    "item4",
				Title: "Estratégias de permanência dos cursistas",
				Options: []Option{
					opt("4.1", "Monitoramento de frequência por encontro"),
					opt("4.2", "Busca ativa dos cursistas ausentes"),
					opt("4.3", "Flexibilização de horários e polos"),
					opt("4.4", "Certificação parcial por módulo concluído"),
					opt("4.5", "Não há estratégias de permanência previstas"),
				},
				Behavior: scoring.Behavior{VetoID: "4.5"},
				Rule: first(
					when(has("4.5"), 0),
					when(countEq(1), 0.25),
					when(countEq(2), 0.5),
					when(countEq(3), 0.75),
					when(countEq(4), 1),
				),
			},
			{
				ID:    "item5",
				Title: "Avaliação global da estrutura formativa",
				Options: []Option{
					opt("5.1", "Plenamente estruturada"),
					opt("5.2", "Bem estruturada com ajustes pontuais"),
					opt("5.3", "Parcialmente estruturada"),
					opt("5.4", "Pouco estruturada"),
					opt("5.5", "Não estruturada"),
				},
				Behavior: scoring.Behavior{SingleSelect: true},
				Rule: first(
					when(has("5.5"), 0),
					when(has("5.4"), 0.25),
					when(has("5.3"), 0.5),
					when(has("5.2"), 0.75),
					when(has("5.1"), 1),
				),
			},
		},
	}
}
