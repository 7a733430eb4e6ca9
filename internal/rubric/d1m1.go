package rubric

import "github.com/formativa/rubrica/internal/scoring"

// Dimensão 1, Categoria 1: previsibilidade da formação para os profissionais
// da educação. Seven items, ladder scoring on most, with a "não se aplica"
// collapse on item 5 and single choice on items 6 and 7.
func formD1M1() Form {
	return Form{
		Key:   "d1m1",
		Title: "Dimensão 1 - Categoria 1",
		Items: []Item{
			{
				ID:    "item1",
				Title: "Profissionais da educação",
				Options: []Option{
					opt("1.1", "Docentes"),
					opt("1.2", "Coordenadores Pedagógicos"),
					opt("1.3", "Gestores"),
					opt("1.4", "Equipes Técnicas"),
					opt("1.5", "Famílias dos Estudantes"),
					opt("1.6", "Suportes Administrativos"),
				},
				Rule: first(
					when(countEq(2), 0.25),
					when(countEq(3), 0.5),
					when(countEq(4), 0.75),
					when(countAtLeast(5), 1),
				),
			},
			{
				ID:    "item2",
				Title: "Previsibilidade para a garantia de organização estrutural acessível",
				Options: []Option{
					opt("2.1", "Levantamento e mapeamento dos profissionais da educação com deficiência e Transtorno do Espectro Autista"),
				},
				Rule: first(when(countAtLeast(1), 1)),
			},
			{
				ID:    "item3",
				Title: "Previsibilidade para a garantia de organização estrutural que atenda a diversidade",
				Options: []Option{
					opt("3.1", "Levantamento e mapeamento dos profissionais da educação que atuam em Escolas do Campo, Educação Bilíngue, Escolas Indígenas, Educação Especial"),
				},
				Rule: first(when(countAtLeast(1), 1)),
			},
			{
				ID:    "item4",
				Title: "Demandas de formação",
				Options: []Option{
					opt("4.1", "Processo de alfabetização (1° e 2° anos do Ensino Fundamental)"),
					opt("4.2", "Recomposição das aprendizagens (3°, 4° e 5° anos do Ensino Fundamental)"),
				},
				Rule: first(
					when(hasAll("4.1", "4.2"), 1),
					when(has("4.1"), 0.75),
					when(has("4.2"), 0.5),
				),
			},
			{
				ID:    "item5",
				Title: "Contempla a alfabetização Matemática",
				Options: []Option{
					opt("5.1", "Sinaliza uma proposta pedagógica na perspectiva interdisciplinar"),
					opt("5.2", "Contempla o bloco de conteúdo Número"),
					opt("5.3", "Contemplam os blocos de conteúdo: Números, Álgebra, Geometria, Grandezas e Medidas e Probabilidade e Estatística"),
					opt("5.4", "Sinalizam discussões e proposições no âmbito da Educação Especial"),
					opt("5.5", "Sinalizam discussões e proposições no âmbito da Educação do Campo"),
					opt("5.6", "Sinalizam discussões no âmbito da Educação Indígena"),
					opt("5.7", "Não se aplica"),
				},
				Behavior: scoring.Behavior{VetoID: "5.7"},
				Rule: first(
					when(has("5.7"), 1),
					when(countEq(6), 1),
					when(countEq(0), 0),
					when(all(hasAll("5.1", "5.2"), countEq(2)), 0.5),
					when(hasAll("5.1", "5.2", "5.3"), 0.75),
					when(has("5.2"), 0.25),
				),
			},
			{
				ID:    "item6",
				Title: "Turno de formação",
				Options: []Option{
					opt("6.1", "Dentro da carga horária de trabalho"),
					opt("6.2", "Dentro de 1/3 da carga horária (coordenações, hora de atividades, planejamentos e reuniões)"),
					opt("6.3", "Sábados"),
					opt("6.4", "Contraturno (para além da carga horária)"),
				},
				Behavior: scoring.Behavior{SingleSelect: true},
				Rule: first(
					when(has("6.3"), 0.25),
					when(has("6.4"), 0.5),
					when(has("6.2"), 0.75),
					when(has("6.1"), 1),
				),
			},
			{
				ID:    "item7",
				Title: "Alcance dos profissionais da educação inscritos nas formações",
				Options: []Option{
					opt("7.1", "100%"),
					opt("7.2", "Entre 80 a 99%"),
					opt("7.3", "Entre 60 a 79%"),
					opt("7.4", "Até 59%"),
				},
				Behavior: scoring.Behavior{SingleSelect: true},
				Rule: first(
					when(has("7.1"), 1),
					when(has("7.2"), 0.75),
					when(has("7.3"), 0.5),
					when(has("7.4"), 0.25),
				),
			},
		},
	}
}
