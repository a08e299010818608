package guild

var sampleEvents = []Event{
	{
		Title:       "Weekly Game Night",
		Date:        "2025-09-03",
		Time:        "8:00 PM NST",
		Location:    "Guild Chat (Discord)",
		Description: "Join us for an evening of games and chatter. We'll play a variety of Neopian games together.",
	},
	{
		Title:       "Council Meeting",
		Date:        "2025-09-07",
		Time:        "7:00 PM NST",
		Location:    "Council Channel",
		Description: "A closed meeting for council members to discuss upcoming events and guild improvements.",
	},
	{
		Title:       "Charity Auction",
		Date:        "2025-09-21",
		Time:        "3:00 PM NST",
		Location:    "Guild Shop",
		Description: "Donate your unwanted items and bid on unique treasures. Proceeds support guild events.",
	},
	{
		Title:       "Monthly Treasure Hunt",
		Date:        "2025-09-15",
		Time:        "6:00 PM NST",
		Location:    "Guild Forum",
		Description: "Follow clues hidden throughout our site and across Neopia to find secret treasures and win prizes!",
	},
	{
		Title:       "Halloween Costume Contest",
		Date:        "2025-10-25",
		Time:        "5:00 PM NST",
		Location:    "Guild Hall",
		Description: "Show off your spookiest costumes! Voting will take place and winners receive exclusive items.",
	},
	{
		Title:       "Holiday Gift Exchange",
		Date:        "2025-12-20",
		Time:        "12:00 PM NST",
		Location:    "Guild Board",
		Description: "Spread holiday cheer by exchanging gifts with fellow guild members! Sign up to participate.",
	},
}

var sampleTasks = []Task{
	{ID: 0, Title: "Collect daily freebies", Description: "Visit Soup Kitchen, Free Jelly and Giant Omelette for daily freebies!"},
	{ID: 1, Title: "Spin the wheels", Description: "Don't forget to spin the wheels like Mediocrity, Knowledge and Monotony for extra prizes."},
	{ID: 2, Title: "Check the guild board", Description: "Visit the guild board to see new messages and announcements."},
	{ID: 3, Title: "Participate in the next event", Description: "Sign up for the next guild event or competition!"},
	{ID: 4, Title: "Update your wishlist", Description: "Keep your item wishlist up‑to‑date in the guild directory."},
}

var sampleMembers = []Member{
	{
		Name:     "Alyssa Flames",
		Username: "dragon_fire",
		Role:     "Leader",
		JoinDate: "2024-01-10",
		Tagline:  "Leading the guild into fiery adventures.",
		Council:  true,
		Bio:      "Alyssa founded Ignite with the goal of creating a warm and welcoming community. She loves organising events and helping members reach their goals.",
	},
	{
		Name:     "Blaze Runner",
		Username: "blazie",
		Role:     "Co‑Leader",
		JoinDate: "2024-03-21",
		Tagline:  "Always ready for a race in the Lost Desert!",
		Council:  true,
		Bio:      "Blaze is our co‑leader, known for their boundless energy and passion for competition. They manage our weekly game nights and keep the atmosphere lively.",
	},
	{
		Name:     "Ember Spark",
		Username: "ember_s",
		Role:     "Council Member",
		JoinDate: "2024-05-08",
		Tagline:  "Collecting all the plushies in Neopia.",
		Council:  true,
		Bio:      "Ember oversees our resources section, curating guides and links for the guild. When not reading, you'll find them exploring the Hidden Tower.",
	},
	{
		Name:     "Pyro Pixie",
		Username: "pyropixie",
		Role:     "Council Member",
		JoinDate: "2024-07-15",
		Tagline:  "Faerie queen in training.",
		Council:  true,
		Bio:      "A lover of all things magical, Pyro organises our treasure hunts and creative contests. She also manages the guild's art gallery.",
	},
	{
		Name:     "Inferno Knight",
		Username: "inferno_knight",
		Role:     "Council Member",
		JoinDate: "2024-09-30",
		Tagline:  "Defender of the guild.",
		Council:  true,
		Bio:      "Inferno leads our battling initiatives, training sessions and tournaments. Their strategies help members strengthen their pets.",
	},
	{Name: "Sunny Day", Username: "sunny_d", Role: "Member", JoinDate: "2025-02-20", Tagline: "Bringing sunshine to everyone."},
	{Name: "Lava Lamp", Username: "lava_lamp", Role: "Member", JoinDate: "2025-03-11", Tagline: "Calm and bright."},
	{Name: "FlareonFan", Username: "flareonfan", Role: "Member", JoinDate: "2024-11-01", Tagline: "Flareon is the best!"},
	{Name: "Spark Storm", Username: "sparkstorm", Role: "Member", JoinDate: "2025-06-01", Tagline: "Shockingly friendly."},
	{Name: "Blitz", Username: "blitz_neo", Role: "Member", JoinDate: "2025-07-12", Tagline: "Speed and spark combined."},
}
