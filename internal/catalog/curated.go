package catalog

// Clubs lists the selectable club roster sources with their
// TheSportsDB team ids and badge URLs.
var Clubs = []ClubInfo{
	{ID: "133613", Name: "Manchester City", ShortName: "Man City", Badge: "https://r2.thesportsdb.com/images/media/team/badge/vwpvry1467462651.png"},
	{ID: "133738", Name: "Real Madrid", ShortName: "Real Madrid", Badge: "https://r2.thesportsdb.com/images/media/team/badge/vwvwrw1473502969.png"},
	{ID: "133739", Name: "Barcelona", ShortName: "Barcelona", Badge: "https://r2.thesportsdb.com/images/media/team/badge/wq9sir1639406443.png"},
	{ID: "133632", Name: "Bayern Munich", ShortName: "Bayern", Badge: "https://r2.thesportsdb.com/images/media/team/badge/01ogkh1716960412.png"},
	{ID: "133602", Name: "Liverpool", ShortName: "Liverpool", Badge: "https://r2.thesportsdb.com/images/media/team/badge/kfaher1737969724.png"},
	{ID: "133604", Name: "Arsenal", ShortName: "Arsenal", Badge: "https://r2.thesportsdb.com/images/media/team/badge/uyhbfe1612467038.png"},
	{ID: "133610", Name: "Chelsea", ShortName: "Chelsea", Badge: "https://r2.thesportsdb.com/images/media/team/badge/yvwvtu1448813215.png"},
	{ID: "133612", Name: "Manchester United", ShortName: "Man Utd", Badge: "https://r2.thesportsdb.com/images/media/team/badge/xzqdr11517660252.png"},
	{ID: "133714", Name: "Paris Saint-Germain", ShortName: "PSG", Badge: "https://r2.thesportsdb.com/images/media/team/badge/rwqrrq1473504808.png"},
	{ID: "133676", Name: "Juventus", ShortName: "Juventus", Badge: "https://r2.thesportsdb.com/images/media/team/badge/uxf0gr1742983727.png"},
	{ID: "133670", Name: "Inter Milan", ShortName: "Inter", Badge: "https://r2.thesportsdb.com/images/media/team/badge/ryhu6d1617113103.png"},
	{ID: "133671", Name: "AC Milan", ShortName: "AC Milan", Badge: "https://r2.thesportsdb.com/images/media/team/badge/wvspur1448806617.png"},
	{ID: "133636", Name: "Borussia Dortmund", ShortName: "Dortmund", Badge: "https://r2.thesportsdb.com/images/media/team/badge/tqo8ge1716960353.png"},
	{ID: "133703", Name: "Atletico Madrid", ShortName: "Atletico", Badge: "https://r2.thesportsdb.com/images/media/team/badge/0ulh3q1719984315.png"},
	{ID: "133616", Name: "Tottenham", ShortName: "Spurs", Badge: "https://r2.thesportsdb.com/images/media/team/badge/dfyfhl1604094109.png"},
}

// CurrentStars is the curated active-player list.
var CurrentStars = []PlayerRecord{
	{Name: "Lionel Messi", Team: "Inter Miami", Nationality: "Argentina", Position: "Forward", Hint: "The GOAT debate"},
	{Name: "Cristiano Ronaldo", Team: "Al-Nassr", Nationality: "Portugal", Position: "Forward", Hint: "SIUUU"},
	{Name: "Kylian Mbappé", Team: "Real Madrid", Nationality: "France", Position: "Forward", Hint: "Teenage World Cup winner"},
	{Name: "Erling Haaland", Team: "Manchester City", Nationality: "Norway", Position: "Striker", Hint: "The Viking"},
	{Name: "Vinicius Jr.", Team: "Real Madrid", Nationality: "Brazil", Position: "Winger", Hint: "Samba magic"},
	{Name: "Jude Bellingham", Team: "Real Madrid", Nationality: "England", Position: "Midfielder", Hint: "Birmingham to Madrid"},
	{Name: "Kevin De Bruyne", Team: "Manchester City", Nationality: "Belgium", Position: "Midfielder", Hint: "Assist king"},
	{Name: "Mohamed Salah", Team: "Liverpool", Nationality: "Egypt", Position: "Forward", Hint: "Egyptian King"},
	{Name: "Robert Lewandowski", Team: "Barcelona", Nationality: "Poland", Position: "Striker", Hint: "5 goals in 9 minutes"},
	{Name: "Neymar Jr.", Team: "Al-Hilal", Nationality: "Brazil", Position: "Forward", Hint: "Rainbow flicks"},
	{Name: "Luka Modrić", Team: "Real Madrid", Nationality: "Croatia", Position: "Midfielder", Hint: "2018 Ballon d'Or"},
	{Name: "Harry Kane", Team: "Bayern Munich", Nationality: "England", Position: "Striker", Hint: "Tottenham legend"},
	{Name: "Bruno Fernandes", Team: "Manchester United", Nationality: "Portugal", Position: "Midfielder", Hint: "Penalty specialist"},
	{Name: "Phil Foden", Team: "Manchester City", Nationality: "England", Position: "Midfielder", Hint: "Stockport Iniesta"},
	{Name: "Bukayo Saka", Team: "Arsenal", Nationality: "England", Position: "Winger", Hint: "Starboy"},
	{Name: "Jamal Musiala", Team: "Bayern Munich", Nationality: "Germany", Position: "Midfielder", Hint: "Bambi"},
	{Name: "Pedri", Team: "Barcelona", Nationality: "Spain", Position: "Midfielder", Hint: "La Masia gem"},
	{Name: "Rodri", Team: "Manchester City", Nationality: "Spain", Position: "Midfielder", Hint: "2024 Ballon d'Or"},
	{Name: "Florian Wirtz", Team: "Bayer Leverkusen", Nationality: "Germany", Position: "Midfielder", Hint: "Wonderkid"},
	{Name: "Cole Palmer", Team: "Chelsea", Nationality: "England", Position: "Midfielder", Hint: "Cold Palmer"},
	{Name: "Virgil van Dijk", Team: "Liverpool", Nationality: "Netherlands", Position: "Defender", Hint: "The Colossus"},
	{Name: "Thibaut Courtois", Team: "Real Madrid", Nationality: "Belgium", Position: "Goalkeeper", Hint: "UCL final hero"},
	{Name: "Manuel Neuer", Team: "Bayern Munich", Nationality: "Germany", Position: "Goalkeeper", Hint: "Sweeper keeper"},
	{Name: "Alisson Becker", Team: "Liverpool", Nationality: "Brazil", Position: "Goalkeeper", Hint: "Brazilian wall"},
	{Name: "Martin Ødegaard", Team: "Arsenal", Nationality: "Norway", Position: "Midfielder", Hint: "Young captain"},
	{Name: "Declan Rice", Team: "Arsenal", Nationality: "England", Position: "Midfielder", Hint: "West Ham legend"},
	{Name: "Son Heung-min", Team: "Tottenham", Nationality: "South Korea", Position: "Forward", Hint: "Sonny"},
	{Name: "Lamine Yamal", Team: "Barcelona", Nationality: "Spain", Position: "Winger", Hint: "Euro 2024 star at 16"},
	{Name: "Gavi", Team: "Barcelona", Nationality: "Spain", Position: "Midfielder", Hint: "Golden Boy 2022"},
	{Name: "Federico Valverde", Team: "Real Madrid", Nationality: "Uruguay", Position: "Midfielder", Hint: "The engine"},
}

// Legends is the curated retired-player list.
var Legends = []PlayerRecord{
	{Name: "Diego Maradona", Team: "Napoli (Legend)", Nationality: "Argentina", Position: "Forward", Hint: "Hand of God"},
	{Name: "Pelé", Team: "Santos (Legend)", Nationality: "Brazil", Position: "Forward", Hint: "O Rei - 3 World Cups"},
	{Name: "Zinedine Zidane", Team: "Real Madrid (Legend)", Nationality: "France", Position: "Midfielder", Hint: "The Headbutt"},
	{Name: "Ronaldinho", Team: "Barcelona (Legend)", Nationality: "Brazil", Position: "Forward", Hint: "Smile and elastico"},
	{Name: "Thierry Henry", Team: "Arsenal (Legend)", Nationality: "France", Position: "Forward", Hint: "Va Va Voom"},
	{Name: "Ronaldo Nazário", Team: "Real Madrid (Legend)", Nationality: "Brazil", Position: "Striker", Hint: "Il Fenomeno"},
	{Name: "Andrea Pirlo", Team: "Juventus (Legend)", Nationality: "Italy", Position: "Midfielder", Hint: "The Architect"},
	{Name: "David Beckham", Team: "Manchester United (Legend)", Nationality: "England", Position: "Midfielder", Hint: "Bend it like..."},
	{Name: "Wayne Rooney", Team: "Manchester United (Legend)", Nationality: "England", Position: "Forward", Hint: "Remember the name"},
	{Name: "Steven Gerrard", Team: "Liverpool (Legend)", Nationality: "England", Position: "Midfielder", Hint: "Istanbul 2005"},
	{Name: "Frank Lampard", Team: "Chelsea (Legend)", Nationality: "England", Position: "Midfielder", Hint: "Super Frank"},
	{Name: "Xavi Hernández", Team: "Barcelona (Legend)", Nationality: "Spain", Position: "Midfielder", Hint: "Tiki-taka master"},
	{Name: "Andrés Iniesta", Team: "Barcelona (Legend)", Nationality: "Spain", Position: "Midfielder", Hint: "2010 World Cup winner"},
	{Name: "Paolo Maldini", Team: "AC Milan (Legend)", Nationality: "Italy", Position: "Defender", Hint: "25 years, one club"},
	{Name: "Roberto Carlos", Team: "Real Madrid (Legend)", Nationality: "Brazil", Position: "Left Back", Hint: "Impossible free kick"},
	{Name: "Kaká", Team: "AC Milan (Legend)", Nationality: "Brazil", Position: "Midfielder", Hint: "2007 Ballon d'Or"},
	{Name: "Alessandro Del Piero", Team: "Juventus (Legend)", Nationality: "Italy", Position: "Forward", Hint: "Il Capitano"},
	{Name: "Gianluigi Buffon", Team: "Juventus (Legend)", Nationality: "Italy", Position: "Goalkeeper", Hint: "Most expensive keeper of his era"},
	{Name: "Zlatan Ibrahimović", Team: "AC Milan (Legend)", Nationality: "Sweden", Position: "Striker", Hint: "God of confidence"},
	{Name: "Samuel Eto'o", Team: "Barcelona (Legend)", Nationality: "Cameroon", Position: "Striker", Hint: "African great"},
	{Name: "Patrick Vieira", Team: "Arsenal (Legend)", Nationality: "France", Position: "Midfielder", Hint: "Invincible captain"},
	{Name: "Dennis Bergkamp", Team: "Arsenal (Legend)", Nationality: "Netherlands", Position: "Forward", Hint: "The Iceman"},
	{Name: "Johan Cruyff", Team: "Barcelona (Legend)", Nationality: "Netherlands", Position: "Forward", Hint: "Total Football"},
	{Name: "George Best", Team: "Manchester United (Legend)", Nationality: "Northern Ireland", Position: "Winger", Hint: "5th Beatle"},
	{Name: "Eric Cantona", Team: "Manchester United (Legend)", Nationality: "France", Position: "Forward", Hint: "The King"},
	{Name: "Didier Drogba", Team: "Chelsea (Legend)", Nationality: "Ivory Coast", Position: "Striker", Hint: "Big game player"},
	{Name: "Sergio Ramos", Team: "Real Madrid (Legend)", Nationality: "Spain", Position: "Defender", Hint: "Last minute headers"},
	{Name: "Iker Casillas", Team: "Real Madrid (Legend)", Nationality: "Spain", Position: "Goalkeeper", Hint: "San Iker"},
	{Name: "Carles Puyol", Team: "Barcelona (Legend)", Nationality: "Spain", Position: "Defender", Hint: "The Captain"},
	{Name: "Francesco Totti", Team: "AS Roma (Legend)", Nationality: "Italy", Position: "Forward", Hint: "Il Capitano of Rome"},
}

// AllCurated returns stars and legends combined.
func AllCurated() []PlayerRecord {
	all := make([]PlayerRecord, 0, len(CurrentStars)+len(Legends))
	all = append(all, CurrentStars...)
	all = append(all, Legends...)
	return all
}
