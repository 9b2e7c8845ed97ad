package config

// DefaultDomains returns the stock catalogue of project domains offered to
// the user when the configuration does not provide its own list.
func DefaultDomains() []string {
	return []string{
		"Accounting",
		"Advertising",
		"Aerospace",
		"Agriculture",
		"AI Research",
		"Architecture",
		"Art",
		"Automotive",
		"Banking",
		"Biotechnology",
		"Blockchain",
		"Chemistry",
		"Childcare",
		"Cinema",
		"Civil Engineering",
		"Climate Science",
		"Cloud Computing",
		"Construction",
		"Consulting",
		"Cosmetics",
		"Cryptocurrency",
		"Cybersecurity",
		"Data Analysis",
		"Defense",
		"Design",
		"E-commerce",
		"Economics",
		"Electrical Engineering",
		"Electronics",
		"Energy",
		"Entertainment",
		"Environmental Science",
		"Event Management",
		"Fashion",
		"Film Production",
		"Financial Services",
		"Fitness",
		"Food Service",
		"Forestry",
		"Gaming",
		"Government",
		"Graphic Design",
		"Healthcare",
		"Hospitality",
		"Human Resources",
		"Industrial Design",
		"Information Technology",
		"Insurance",
		"Interior Design",
		"International Relations",
		"Journalism",
		"Law Enforcement",
		"Linguistics",
		"Logistics",
		"Manufacturing",
		"Marine Biology",
		"Marketing",
		"Materials Science",
		"Mathematics",
		"Mechanical Engineering",
		"Media",
		"Medicine",
		"Mental Health",
		"Mining",
		"Music",
		"Nanotechnology",
		"Natural Language Processing",
		"Neuroscience",
		"Non-profit",
		"Nuclear Engineering",
		"Nutrition",
		"Oil & Gas",
		"Pharmaceuticals",
		"Philosophy",
		"Photography",
		"Physics",
		"Politics",
		"Psychology",
		"Public Health",
		"Public Relations",
		"Publishing",
		"Quantum Computing",
		"Real Estate",
		"Renewable Energy",
		"Retail",
		"Robotics",
		"Sales",
		"Science Communication",
		"Social Media",
		"Social Work",
		"Software Development",
		"Space Exploration",
		"Sports",
		"Supply Chain",
		"Telecommunications",
		"Textiles",
		"Tourism",
		"Transportation",
		"Urban Planning",
		"UX/UI Design",
		"Veterinary Medicine",
		"Video Production",
		"Virtual Reality",
		"Web Development",
		"Wildlife Conservation",
		"Acoustics",
		"Aeronautics",
		"AgriTech",
		"Animal Husbandry",
		"Anthropology",
		"Archaeology",
		"Astrophysics",
		"Augmented Reality",
		"Aviation",
		"Bioinformatics",
		"Biomedical Engineering",
		"Botany",
		"Business Intelligence",
		"Cartography",
		"Chemical Engineering",
		"Computer Vision",
		"Criminology",
		"Cryptography",
		"Culinary Arts",
		"Customer Relationship Management (CRM)",
		"Data Science",
		"Dentistry",
		"Digital Forensics",
		"E-learning",
		"Ecology",
		"Education Technology",
		"Emergency Services",
		"Energy Storage",
		"Epidemiology",
		"Ergonomics",
		"Ethics",
		"Facility Management",
		"Finance Technology (FinTech)",
		"Fisheries",
		"Food Technology",
		"Game Development",
		"Genomics",
		"Geology",
		"Geopolitics",
		"Gerontology",
		"Green Technology",
		"Horticulture",
		"Hydrology",
		"Industrial Automation",
		"Inventory Management",
		"IoT (Internet of Things)",
		"Landscape Architecture",
		"Library Science",
		"Machine Learning",
		"Meteorology",
		"Microbiology",
		"Mobile Development",
		"Oceanography",
		"Operations Research",
		"Optics",
		"Paleontology",
		"Performing Arts",
		"Petroleum Engineering",
		"Pharmacology",
		"Political Science",
		"Project Management",
		"Quality Assurance",
		"Recycling",
		"Remote Sensing",
		"Risk Management",
		"Security Systems",
		"Sociology",
		"Speech Recognition",
		"Sports Analytics",
		"Sustainable Development",
		"Taxation",
		"Thermodynamics",
		"Travel Technology",
		"Veterinary Technology",
		"Waste Management",
		"Water Resources",
		"Zoology",
	}
}
