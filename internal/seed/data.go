// Package seed holds the reference catalogs the platform ships with and loads
// them into storage.
package seed

import (
	"github.com/kailas-cloud/campushub/internal/domain/funding"
	"github.com/kailas-cloud/campushub/internal/domain/kind"
	"github.com/kailas-cloud/campushub/internal/domain/member"
	"github.com/kailas-cloud/campushub/internal/domain/mentor"
	"github.com/kailas-cloud/campushub/internal/domain/project"
)

// Popular returns the suggested filter chips shown above a catalog.
func Popular(k kind.Kind) []string {
	switch k {
	case kind.Projects:
		return []string{"AI", "Mobile App", "Web Dev", "IoT", "UX Design", "Data Viz", "Hardware", "Psychology", "Environmental"}
	case kind.Members:
		return []string{"React", "Python", "UX Design", "Machine Learning", "AI", "Mobile Dev", "Leadership", "UI Design", "AR/VR"}
	case kind.Mentors:
		return []string{"Machine Learning", "Full-Stack Development", "UX/UI Design", "Entrepreneurship", "Blockchain", "Genomics"}
	case kind.Funding:
		return []string{"Entrepreneurship", "Sustainability", "Healthcare", "Creative Arts", "Social Innovation", "Research"}
	default:
		return nil
	}
}

// Projects returns the reference project catalog.
func Projects() []project.Project {
	return []project.Project{
		must(project.New("1", "AI-Powered Campus Navigator",
			"Create an AI system to help new students navigate campus facilities and resources.",
			[]string{"AI", "Mobile App", "UX Design"}, 4, "3 months", project.Medium)),
		must(project.New("2", "Sustainable Energy Monitor",
			"Build a real-time dashboard to monitor and optimize energy usage across campus.",
			[]string{"IoT", "Data Viz", "Sustainability"}, 5, "6 months", project.Hard)),
		must(project.New("3", "Mental Health Companion",
			"Design an app to support student mental health with resources and anonymous support.",
			[]string{"Health", "App Dev", "Psychology"}, 3, "4 months", project.Medium)),
		must(project.New("4", "Smart Campus Recycling",
			"Create a system to track and improve recycling habits across university campuses.",
			[]string{"Hardware", "Environmental", "IoT"}, 4, "5 months", project.Medium)),
		must(project.New("5", "Collaborative Music Platform",
			"Build a platform for student musicians to collaborate on compositions remotely.",
			[]string{"Audio", "Web Dev", "Creative"}, 3, "4 months", project.Medium)),
		must(project.New("6", "Robotics Lab Assistant",
			"Design a robotic assistant to help with common lab tasks in science departments.",
			[]string{"Robotics", "AI", "Hardware"}, 5, "8 months", project.Hard)),
	}
}

// Members returns the reference teammate catalog.
func Members() []member.Member {
	return []member.Member{
		must(member.New("alex-rivera", "Alex Rivera", "Full Stack Developer",
			[]string{"React", "Node.js", "MongoDB"}, "Stanford University")),
		must(member.New("mia-chen", "Mia Chen", "UX Designer",
			[]string{"Figma", "User Research", "Prototyping"}, "Carnegie Mellon")),
		must(member.New("jordan-taylor", "Jordan Taylor", "Data Scientist",
			[]string{"Python", "ML", "Data Analysis"}, "MIT")),
		must(member.New("sam-wilson", "Sam Wilson", "Mobile Developer",
			[]string{"Flutter", "Firebase", "UI Design"}, "UC Berkeley")),
		must(member.New("aisha-johnson", "Aisha Johnson", "AI Researcher",
			[]string{"TensorFlow", "Python", "NLP"}, "Georgia Tech")),
		must(member.New("carlos-mendez", "Carlos Mendez", "Hardware Engineer",
			[]string{"Arduino", "PCB Design", "IoT"}, "Caltech")),
		must(member.New("zoe-williams", "Zoe Williams", "Project Manager",
			[]string{"Agile", "Team Leadership", "Strategy"}, "Harvard University")),
		must(member.New("eric-chang", "Eric Chang", "Game Developer",
			[]string{"Unity", "C#", "3D Modeling"}, "NYU")),
	}
}

// Mentors returns the reference mentor catalog.
func Mentors() []mentor.Mentor {
	return []mentor.Mentor{
		must(mentor.New("1", "Dr. Sarah Chen", "AI Research Scientist", "DeepMind",
			[]string{"Machine Learning", "Neural Networks", "Computer Vision"}, 4.9,
			"Specializing in deep learning architectures with over 10 years of industry experience. "+
				"Available to mentor students working on AI/ML projects.")),
		must(mentor.New("2", "James Rodriguez", "Senior Software Engineer", "Google",
			[]string{"Full-Stack Development", "Cloud Architecture", "Mobile Apps"}, 4.7,
			"Passionate about helping students develop scalable applications with modern tech stacks. "+
				"Experienced in mentoring junior developers.")),
		must(mentor.New("3", "Dr. Michelle Wong", "Biotech Researcher", "Genentech",
			[]string{"Biomedical Engineering", "Genomics", "Medical Devices"}, 4.8,
			"Helping students bridge the gap between biology and technology. "+
				"Can guide projects related to healthcare innovations and biotech.")),
		must(mentor.New("4", "Alex Johnson", "Product Design Lead", "Airbnb",
			[]string{"UX/UI Design", "Design Systems", "User Research"}, 4.6,
			"Design mentor with a focus on user-centered design processes. "+
				"Can help with everything from wireframing to usability testing.")),
		must(mentor.New("5", "Priya Patel", "Startup Founder", "TechFoundry",
			[]string{"Entrepreneurship", "Business Strategy", "Fundraising"}, 4.9,
			"Serial entrepreneur who has raised over $10M in funding. "+
				"Mentors students interested in launching their own startups.")),
		must(mentor.New("6", "David Kim", "Blockchain Developer", "Ethereum Foundation",
			[]string{"Blockchain", "Smart Contracts", "Cryptocurrency"}, 4.7,
			"Specialized in blockchain technologies and Web3 development. "+
				"Can guide students on implementing decentralized applications.")),
	}
}

// Funding returns the reference funding catalog.
func Funding() []funding.Opportunity {
	return []funding.Opportunity{
		must(funding.New("1", "Innovation Startup Grant", "Tech Founders Association",
			"$5,000 - $15,000", "June 30, 2023", "Entrepreneurship",
			"For student-led startups in the early stages of development. "+
				"Provides seed funding to help bring innovative ideas to market.",
			[]string{
				"Business plan or pitch deck",
				"Prototype or proof of concept",
				"Team of at least 2 students",
				"Faculty advisor",
			})),
		must(funding.New("2", "Sustainable Solutions Fund", "GreenFuture Foundation",
			"$10,000", "July 15, 2023", "Sustainability",
			"Supporting projects that address environmental challenges and promote sustainable "+
				"development on campus or in local communities.",
			[]string{
				"Project proposal with environmental impact assessment",
				"Budget plan",
				"Implementation timeline",
				"Letter of support from a faculty member",
			})),
		must(funding.New("3", "Digital Health Innovation Prize", "MedTech Alliance",
			"$7,500 - $20,000", "August 5, 2023", "Healthcare",
			"For innovative technology solutions addressing healthcare challenges. "+
				"Open to interdisciplinary teams with projects in digital health.",
			[]string{
				"Working prototype",
				"Research validation",
				"Team must include students from technical and health disciplines",
				"Project presentation video",
			})),
		must(funding.New("4", "Arts & Media Production Grant", "Creative Works Foundation",
			"$3,000 - $8,000", "September 1, 2023", "Creative Arts",
			"Supporting student film, animation, game design, and other media production projects "+
				"that demonstrate creativity and technical skill.",
			[]string{
				"Portfolio of previous work",
				"Detailed project proposal",
				"Production timeline",
				"Budget breakdown",
			})),
		must(funding.New("5", "Social Impact Challenge", "Community Change Collective",
			"$12,000", "September 20, 2023", "Social Innovation",
			"For projects addressing social challenges and promoting positive change in communities. "+
				"Focus on education, access, equality, and justice.",
			[]string{
				"Problem statement and solution approach",
				"Community engagement plan",
				"Impact measurement framework",
				"Sustainability plan",
			})),
		must(funding.New("6", "Research Commercialization Fund", "University Innovation Office",
			"Up to $25,000", "October 15, 2023", "Research",
			"Helping student researchers transform academic discoveries into commercial applications. "+
				"Funds prototype development and market testing.",
			[]string{
				"Research validation documentation",
				"IP status disclosure",
				"Market analysis",
				"Commercialization plan",
				"Faculty endorsement",
			})),
	}
}

// must unwraps constructor results for static data; a failure is a programming error.
func must[T any](v T, err error) T {
	if err != nil {
		panic("seed: " + err.Error())
	}
	return v
}
