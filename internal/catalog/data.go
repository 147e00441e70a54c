package catalog

import "github.com/sells-group/impact-search/internal/model"

// DefaultAliases is the built-in keyword table. Order matters: the first
// keyword contained in a query wins.
var DefaultAliases = []Alias{
	{Keyword: "global warming", Topic: "climate change"},
	{Keyword: "environment", Topic: "climate change"},
	{Keyword: "carbon", Topic: "climate change"},
	{Keyword: "emissions", Topic: "climate change"},
	{Keyword: "food", Topic: "hunger"},
	{Keyword: "poverty", Topic: "hunger"},
	{Keyword: "famine", Topic: "hunger"},
	{Keyword: "school", Topic: "education"},
	{Keyword: "learning", Topic: "education"},
	{Keyword: "teaching", Topic: "education"},
	{Keyword: "literacy", Topic: "education"},
	{Keyword: "depression", Topic: "mental health"},
	{Keyword: "anxiety", Topic: "mental health"},
	{Keyword: "therapy", Topic: "mental health"},
	{Keyword: "wellness", Topic: "mental health"},
	{Keyword: "sea", Topic: "ocean"},
	{Keyword: "marine", Topic: "ocean"},
	{Keyword: "plastic", Topic: "ocean"},
	{Keyword: "beach", Topic: "ocean"},
	{Keyword: "water", Topic: "ocean"},
}

// DefaultTrending are the causes featured on the landing page.
var DefaultTrending = []string{
	"Climate Change",
	"Hunger",
	"Education",
	"Mental Health",
	"Ocean Conservation",
}

// Default returns the compiled-in catalog.
func Default() *Catalog {
	c, err := New(defaultTopics(), DefaultAliases, DefaultTrending)
	if err != nil {
		panic(err) // built-in data is covered by tests
	}
	return c
}

func defaultTopics() []Topic {
	return []Topic{
		{Key: "climate change", Bundle: climateChange()},
		{Key: "hunger", Bundle: hunger()},
		{Key: "education", Bundle: education()},
		{Key: "mental health", Bundle: mentalHealth()},
		{Key: "ocean", Bundle: ocean()},
	}
}

func climateChange() model.Bundle {
	return model.Bundle{
		Organizations: []model.Organization{
			{
				ID:          "1",
				Name:        "350.org",
				Description: "Building a global grassroots movement to solve the climate crisis through online campaigns, grassroots organizing, and mass public actions.",
				Website:     "https://350.org",
				Category:    "Environmental Advocacy",
			},
			{
				ID:          "2",
				Name:        "Greenpeace",
				Description: "Global campaigning network that acts to change attitudes and behavior, protect and conserve the environment, and promote peace.",
				Website:     "https://www.greenpeace.org",
				Category:    "Environmental Protection",
			},
			{
				ID:          "3",
				Name:        "The Nature Conservancy",
				Description: "Conserving the lands and waters on which all life depends through science-based solutions.",
				Website:     "https://www.nature.org",
				Category:    "Conservation",
			},
			{
				ID:          "4",
				Name:        "Climate Reality Project",
				Description: "Founded by Al Gore, training climate activists and advocating for clean energy solutions worldwide.",
				Website:     "https://www.climaterealityproject.org",
				Category:    "Climate Education",
			},
		},
		Campaigns: []model.Campaign{
			{
				ID:           "1",
				Title:        "Stop Fossil Fuel Subsidies",
				Organization: "350.org",
				Description:  "Join millions demanding governments end fossil fuel subsidies and invest in renewable energy.",
				Link:         "https://350.org",
				Urgency:      model.UrgencyHigh,
			},
			{
				ID:           "2",
				Title:        "Plant a Billion Trees",
				Organization: "The Nature Conservancy",
				Description:  "Help restore forests worldwide by supporting our goal to plant 1 billion trees by 2030.",
				Link:         "https://www.nature.org",
				Urgency:      model.UrgencyMedium,
			},
			{
				ID:           "3",
				Title:        "Climate Emergency Declaration",
				Organization: "Climate Reality Project",
				Description:  "Urge your local government to declare a climate emergency and commit to net-zero emissions.",
				Link:         "https://www.climaterealityproject.org",
				Urgency:      model.UrgencyHigh,
			},
		},
		VolunteerOpportunities: []model.VolunteerOpportunity{
			{
				ID:           "1",
				Title:        "Climate Reality Leadership Corps",
				Organization: "Climate Reality Project",
				Location:     "Worldwide",
				Mode:         model.ModeHybrid,
				Commitment:   "3-day training + ongoing",
				Link:         "https://www.climaterealityproject.org",
			},
			{
				ID:           "2",
				Title:        "Tree Planting Volunteer",
				Organization: "One Tree Planted",
				Location:     "Various locations",
				Mode:         model.ModeOnsite,
				Commitment:   "4-8 hours/event",
				Link:         "https://onetreeplanted.org",
			},
			{
				ID:           "3",
				Title:        "Climate Science Communicator",
				Organization: "NASA Climate",
				Location:     "Remote",
				Mode:         model.ModeRemote,
				Commitment:   "5-10 hours/month",
				Link:         "https://climate.nasa.gov",
			},
		},
		MicroActions: []model.MicroAction{
			{
				ID:           "1",
				Title:        "Calculate Your Carbon Footprint",
				Description:  "Use an online calculator to understand your environmental impact and identify areas for improvement.",
				TimeRequired: "5 minutes",
				Impact:       "Personal awareness leads to 10% average reduction in emissions",
				Link:         "https://www.carbonfootprint.com/calculator.aspx",
			},
			{
				ID:           "2",
				Title:        "Switch to a Green Energy Provider",
				Description:  "Contact your energy provider to switch to renewable energy sources or find a green alternative.",
				TimeRequired: "15 minutes",
				Impact:       "Can reduce household carbon footprint by up to 1.5 tons/year",
			},
			{
				ID:           "3",
				Title:        "Sign the Climate Petition",
				Description:  "Add your voice to millions calling for urgent climate action from world leaders.",
				TimeRequired: "2 minutes",
				Impact:       "Collective pressure drives policy change",
				Link:         "https://www.change.org",
			},
			{
				ID:           "4",
				Title:        "Share Climate Facts",
				Description:  "Post verified climate information on your social media to spread awareness.",
				TimeRequired: "3 minutes",
				Impact:       "Each share reaches an average of 100+ people",
			},
		},
	}
}

func hunger() model.Bundle {
	return model.Bundle{
		Organizations: []model.Organization{
			{
				ID:          "5",
				Name:        "World Food Programme",
				Description: "The world's largest humanitarian organization saving lives and changing lives, delivering food assistance in emergencies.",
				Website:     "https://www.wfp.org",
				Category:    "Humanitarian Aid",
			},
			{
				ID:          "6",
				Name:        "Feeding America",
				Description: "Nationwide network of food banks feeding more than 46 million people through pantries and meal programs.",
				Website:     "https://www.feedingamerica.org",
				Category:    "Food Security",
			},
			{
				ID:          "7",
				Name:        "Action Against Hunger",
				Description: "Global humanitarian organization committed to ending world hunger through nutrition programs.",
				Website:     "https://www.actionagainsthunger.org",
				Category:    "Nutrition",
			},
		},
		Campaigns: []model.Campaign{
			{
				ID:           "4",
				Title:        "Zero Hunger Challenge",
				Organization: "World Food Programme",
				Description:  "Support the UN goal to end hunger, achieve food security, and improve nutrition by 2030.",
				Link:         "https://www.wfp.org",
				Urgency:      model.UrgencyHigh,
			},
			{
				ID:           "5",
				Title:        "Summer Meals for Kids",
				Organization: "Feeding America",
				Description:  "Help provide meals to children who rely on school nutrition programs during summer break.",
				Link:         "https://www.feedingamerica.org",
				Urgency:      model.UrgencyMedium,
			},
		},
		VolunteerOpportunities: []model.VolunteerOpportunity{
			{
				ID:           "4",
				Title:        "Food Bank Volunteer",
				Organization: "Feeding America",
				Location:     "Local food banks",
				Mode:         model.ModeOnsite,
				Commitment:   "2-4 hours/week",
				Link:         "https://www.feedingamerica.org",
			},
			{
				ID:           "5",
				Title:        "Meal Delivery Driver",
				Organization: "Meals on Wheels",
				Location:     "Local communities",
				Mode:         model.ModeOnsite,
				Commitment:   "1-2 hours/week",
				Link:         "https://www.mealsonwheelsamerica.org",
			},
		},
		MicroActions: []model.MicroAction{
			{
				ID:           "5",
				Title:        "Donate to a Food Bank",
				Description:  "Make a monetary or food donation to your local food bank.",
				TimeRequired: "5 minutes",
				Impact:       "$1 can provide 10 meals through food bank networks",
			},
			{
				ID:           "6",
				Title:        "Reduce Food Waste",
				Description:  "Plan meals and use leftovers to minimize food waste in your household.",
				TimeRequired: "10 minutes",
				Impact:       "Average family can save $1,500/year and reduce emissions",
			},
		},
	}
}

func education() model.Bundle {
	return model.Bundle{
		Organizations: []model.Organization{
			{
				ID:          "8",
				Name:        "Room to Read",
				Description: "Transforming the lives of millions of children through literacy and gender equality in education.",
				Website:     "https://www.roomtoread.org",
				Category:    "Literacy",
			},
			{
				ID:          "9",
				Name:        "Khan Academy",
				Description: "Free, world-class education for anyone, anywhere through online courses and resources.",
				Website:     "https://www.khanacademy.org",
				Category:    "Online Education",
			},
			{
				ID:          "10",
				Name:        "Teach For All",
				Description: "Global network developing collective leadership to ensure all children can fulfill their potential.",
				Website:     "https://teachforall.org",
				Category:    "Teaching",
			},
		},
		Campaigns: []model.Campaign{
			{
				ID:           "6",
				Title:        "Books for Africa",
				Organization: "Room to Read",
				Description:  "Help ship books and educational materials to schools in developing countries.",
				Link:         "https://www.roomtoread.org",
				Urgency:      model.UrgencyMedium,
			},
		},
		VolunteerOpportunities: []model.VolunteerOpportunity{
			{
				ID:           "6",
				Title:        "Online Tutor",
				Organization: "Khan Academy",
				Location:     "Remote",
				Mode:         model.ModeRemote,
				Commitment:   "2-5 hours/week",
				Link:         "https://www.khanacademy.org",
			},
			{
				ID:           "7",
				Title:        "Classroom Teacher",
				Organization: "Teach For All",
				Location:     "Various countries",
				Mode:         model.ModeOnsite,
				Commitment:   "2-year commitment",
				Link:         "https://teachforall.org",
			},
		},
		MicroActions: []model.MicroAction{
			{
				ID:           "7",
				Title:        "Donate Used Books",
				Description:  "Give your used books to local libraries, schools, or literacy programs.",
				TimeRequired: "15 minutes",
				Impact:       "Each book can educate multiple children over years",
			},
			{
				ID:           "8",
				Title:        "Sponsor a Student",
				Description:  "Set up a monthly donation to support a student's education.",
				TimeRequired: "10 minutes",
				Impact:       "Can cover school fees, supplies, and meals for one child",
			},
		},
	}
}

func mentalHealth() model.Bundle {
	return model.Bundle{
		Organizations: []model.Organization{
			{
				ID:          "11",
				Name:        "NAMI",
				Description: "National Alliance on Mental Illness - the nation's largest grassroots mental health organization.",
				Website:     "https://www.nami.org",
				Category:    "Mental Health Advocacy",
			},
			{
				ID:          "12",
				Name:        "Mental Health Foundation",
				Description: "Pioneering work in mental health research, policy, and improving services.",
				Website:     "https://www.mentalhealth.org",
				Category:    "Research & Policy",
			},
			{
				ID:          "13",
				Name:        "Crisis Text Line",
				Description: "Free, 24/7 support for those in crisis via text message.",
				Website:     "https://www.crisistextline.org",
				Category:    "Crisis Support",
			},
		},
		Campaigns: []model.Campaign{
			{
				ID:           "7",
				Title:        "Mental Health Awareness Month",
				Organization: "NAMI",
				Description:  "Join the movement to end stigma and promote mental health awareness.",
				Link:         "https://www.nami.org",
				Urgency:      model.UrgencyMedium,
			},
		},
		VolunteerOpportunities: []model.VolunteerOpportunity{
			{
				ID:           "8",
				Title:        "Crisis Counselor",
				Organization: "Crisis Text Line",
				Location:     "Remote",
				Mode:         model.ModeRemote,
				Commitment:   "4 hours/week",
				Link:         "https://www.crisistextline.org",
			},
			{
				ID:           "9",
				Title:        "Peer Support Specialist",
				Organization: "NAMI",
				Location:     "Local chapters",
				Mode:         model.ModeHybrid,
				Commitment:   "5-10 hours/month",
				Link:         "https://www.nami.org",
			},
		},
		MicroActions: []model.MicroAction{
			{
				ID:           "9",
				Title:        "Check In on Someone",
				Description:  "Reach out to a friend or family member to ask how they're really doing.",
				TimeRequired: "5 minutes",
				Impact:       "A single conversation can prevent crisis",
			},
			{
				ID:           "10",
				Title:        "Share Mental Health Resources",
				Description:  "Post helpline numbers and mental health resources on your social media.",
				TimeRequired: "2 minutes",
				Impact:       "Could save a life by reaching someone in need",
			},
		},
	}
}

func ocean() model.Bundle {
	return model.Bundle{
		Organizations: []model.Organization{
			{
				ID:          "14",
				Name:        "Ocean Conservancy",
				Description: "Working to protect the ocean from today's greatest global challenges through science-based solutions.",
				Website:     "https://oceanconservancy.org",
				Category:    "Ocean Protection",
			},
			{
				ID:          "15",
				Name:        "Sea Shepherd",
				Description: "Direct action to defend, conserve, and protect marine wildlife and ecosystems.",
				Website:     "https://seashepherd.org",
				Category:    "Marine Conservation",
			},
			{
				ID:          "16",
				Name:        "Surfrider Foundation",
				Description: "Dedicated to the protection and enjoyment of the world's ocean, waves, and beaches.",
				Website:     "https://www.surfrider.org",
				Category:    "Coastal Protection",
			},
		},
		Campaigns: []model.Campaign{
			{
				ID:           "8",
				Title:        "International Coastal Cleanup",
				Organization: "Ocean Conservancy",
				Description:  "Join the world's largest volunteer effort to clean up beaches and waterways.",
				Link:         "https://oceanconservancy.org",
				Urgency:      model.UrgencyMedium,
			},
			{
				ID:           "9",
				Title:        "Plastic Free July",
				Organization: "Surfrider Foundation",
				Description:  "Commit to reducing single-use plastic for one month and beyond.",
				Link:         "https://www.surfrider.org",
				Urgency:      model.UrgencyLow,
			},
		},
		VolunteerOpportunities: []model.VolunteerOpportunity{
			{
				ID:           "10",
				Title:        "Beach Cleanup Volunteer",
				Organization: "Surfrider Foundation",
				Location:     "Coastal areas",
				Mode:         model.ModeOnsite,
				Commitment:   "2-3 hours/event",
				Link:         "https://www.surfrider.org",
			},
		},
		MicroActions: []model.MicroAction{
			{
				ID:           "11",
				Title:        "Refuse Single-Use Plastics",
				Description:  "Say no to plastic bags, straws, and bottles for one week.",
				TimeRequired: "Ongoing",
				Impact:       "Prevents 100+ plastic items from entering oceans/year",
			},
			{
				ID:           "12",
				Title:        "Report Marine Pollution",
				Description:  "Use apps to report and document ocean pollution when you spot it.",
				TimeRequired: "3 minutes",
				Impact:       "Data helps target cleanup and policy efforts",
			},
		},
	}
}
