package daemon

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/controller/adminuser"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
)

// Required admin accounts. Both start with the default password and are
// expected to change it through the profile endpoint.
const (
	SuperAdminEmail = "aynalhossain104@gmail.com"
	AdminEmail      = "admin@digitaltechgroup.com"

	defaultAdminPassword = "admin123"
)

// Bootstrap prepares the database content at startup: a full demo dataset
// when the database is empty, otherwise just the required admin accounts.
func Bootstrap(gdb *gorm.DB) error {
	count, err := adminuser.Count(gdb)
	if err != nil {
		return err
	}

	if count == 0 {
		return SeedIfEmpty(gdb)
	}

	return EnsureAdmins(gdb)
}

// EnsureAdmins creates whichever of the required admin accounts is missing.
// Existing accounts are left untouched.
func EnsureAdmins(gdb *gorm.DB) error {
	required := []models.Admin{
		{
			Email:        SuperAdminEmail,
			Name:         "Super Admin",
			Role:         models.RoleSuperAdmin,
			IsSuperAdmin: true,
		},
		{
			Email: AdminEmail,
			Name:  "Admin",
			Role:  models.RoleAdmin,
		},
	}

	for _, admin := range required {
		_, err := adminuser.GetByEmail(gdb, admin.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, db.ErrNotFound) {
			return err
		}

		admin.Password = models.HashPassword(defaultAdminPassword)
		if err := adminuser.Create(gdb, &admin); err != nil {
			return err
		}
	}

	return nil
}

// SeedIfEmpty fills an empty database with the demo dataset: the two admin
// accounts plus sample content for every section of the site. Does nothing
// when admin accounts already exist.
func SeedIfEmpty(gdb *gorm.DB) error {
	count, err := adminuser.Count(gdb)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := models.HashPassword(defaultAdminPassword)

	admins := []models.Admin{
		{Email: SuperAdminEmail, Password: password, Name: "Super Admin", Role: models.RoleSuperAdmin, IsSuperAdmin: true},
		{Email: AdminEmail, Password: password, Name: "Admin", Role: models.RoleAdmin},
	}
	if err := gdb.Create(&admins).Error; err != nil {
		return err
	}

	services := []models.Service{
		{Title: "Recruitment Services", Slug: "recruitment-services", Description: "We connect businesses with top-tier talent through our extensive recruitment network. Our expert recruiters understand industry needs and deliver qualified candidates efficiently.", ShortDescription: "Find the perfect talent for your organization", Category: "Recruitment", Features: models.StringList{"Candidate Screening", "Interview Coordination", "Background Checks", "Onboarding Support"}, Price: "From $500", CompletedOrders: 150, OrderIndex: 1, IsActive: true, MetaTitle: "Professional Recruitment Services", MetaDescription: "Expert recruitment services to find the best talent for your business."},
		{Title: "Digital Marketing", Slug: "digital-marketing", Description: "Comprehensive digital marketing strategies to boost your online presence. From SEO to social media management, we help your business grow in the digital landscape.", ShortDescription: "Grow your business online with data-driven marketing", Category: "Marketing", Features: models.StringList{"SEO Optimization", "Social Media Marketing", "Content Marketing", "PPC Advertising", "Email Marketing"}, Price: "From $300/mo", CompletedOrders: 200, OrderIndex: 2, IsActive: true, MetaTitle: "Digital Marketing Services", MetaDescription: "Data-driven digital marketing solutions for business growth."},
		{Title: "Sourcing Solutions", Slug: "sourcing-solutions", Description: "Professional sourcing services to find the right products and suppliers for your business. We leverage our global network to ensure quality and competitive pricing.", ShortDescription: "Global sourcing with quality assurance", Category: "Sourcing", Features: models.StringList{"Supplier Verification", "Quality Control", "Price Negotiation", "Logistics Coordination"}, Price: "From $400", CompletedOrders: 120, OrderIndex: 3, IsActive: true, MetaTitle: "Sourcing Solutions", MetaDescription: "Professional sourcing services with global network coverage."},
		{Title: "Web Development", Slug: "web-development", Description: "Custom web development solutions to establish your digital presence. From responsive websites to complex web applications, we build solutions that drive results.", ShortDescription: "Custom websites and web applications", Category: "Technology", Features: models.StringList{"Responsive Design", "E-commerce Solutions", "CMS Development", "API Integration", "Performance Optimization"}, Price: "From $1000", CompletedOrders: 85, OrderIndex: 4, IsActive: true, MetaTitle: "Web Development Services", MetaDescription: "Custom web development solutions for modern businesses."},
		{Title: "Graphics Design", Slug: "graphics-design", Description: "Creative graphic design services that make your brand stand out. Our designers create visually compelling content that communicates your message effectively.", ShortDescription: "Creative designs that capture attention", Category: "Design", Features: models.StringList{"Logo Design", "Brand Identity", "Social Media Graphics", "Print Materials", "UI/UX Design"}, Price: "From $200", CompletedOrders: 300, OrderIndex: 5, IsActive: true, MetaTitle: "Graphics Design Services", MetaDescription: "Professional graphic design services for impactful branding."},
		{Title: "Data Entry & Admin Support", Slug: "data-entry-admin", Description: "Reliable data entry and administrative support services to help you focus on what matters most. Accurate, efficient, and confidential handling of your data.", ShortDescription: "Efficient data management and admin support", Category: "Support", Features: models.StringList{"Data Entry", "Data Processing", "Virtual Assistant", "Document Management"}, Price: "From $150", CompletedOrders: 250, OrderIndex: 6, IsActive: true, MetaTitle: "Data Entry & Admin Support", MetaDescription: "Professional data entry and administrative support services."},
	}
	if err := gdb.Create(&services).Error; err != nil {
		return err
	}

	packages := []models.Package{
		{Name: "Starter Package", ServiceID: &services[0].ID, Price: "$500", Description: "Perfect for small businesses starting their recruitment journey", Features: models.StringList{"Up to 5 candidates", "Basic screening", "1 job posting", "Email support"}, DeliveryTime: "7-14 days", IsActive: true, OrderIndex: 1},
		{Name: "Professional Package", ServiceID: &services[0].ID, Price: "$1,200", Description: "Comprehensive recruitment for growing businesses", Features: models.StringList{"Up to 15 candidates", "Advanced screening", "3 job postings", "Interview scheduling", "Priority support"}, DeliveryTime: "10-21 days", IsPopular: true, IsActive: true, OrderIndex: 2},
		{Name: "Enterprise Package", ServiceID: &services[0].ID, Price: "$3,000", Description: "Full-scale recruitment solutions for large organizations", Features: models.StringList{"Unlimited candidates", "Executive search", "Unlimited postings", "Dedicated recruiter", "24/7 support", "Background checks"}, DeliveryTime: "14-30 days", IsActive: true, OrderIndex: 3},
		{Name: "Social Media Basic", ServiceID: &services[1].ID, Price: "$300/mo", Description: "Essential social media management for brand visibility", Features: models.StringList{"3 platforms", "12 posts/month", "Monthly report", "Community management"}, DeliveryTime: "Monthly", IsActive: true, OrderIndex: 4},
		{Name: "Digital Growth Pro", ServiceID: &services[1].ID, Price: "$800/mo", Description: "Advanced digital marketing for accelerated growth", Features: models.StringList{"5 platforms", "30 posts/month", "SEO optimization", "PPC management", "Weekly reports", "Content strategy"}, DeliveryTime: "Monthly", IsPopular: true, IsActive: true, OrderIndex: 5},
		{Name: "Design Bundle", ServiceID: &services[4].ID, Price: "$500", Description: "Complete brand identity design package", Features: models.StringList{"Logo design", "Business cards", "Social media kit", "Brand guidelines", "3 revisions"}, DeliveryTime: "5-10 days", IsActive: true, OrderIndex: 6},
	}
	if err := gdb.Create(&packages).Error; err != nil {
		return err
	}

	projects := []models.Project{
		{Title: "E-commerce Platform Recruitment", Slug: "ecommerce-recruitment", Description: "Successfully recruited 25+ tech professionals for a leading e-commerce platform.", ShortDescription: "Recruited 25+ tech professionals", Category: "Recruitment", ClientName: "TechMart Inc.", CompletionDate: "2025-01", Technologies: models.StringList{"LinkedIn Recruiting", "Technical Screening", "Culture Fit Assessment"}, IsActive: true},
		{Title: "Social Media Campaign - Fashion Brand", Slug: "fashion-brand-campaign", Description: "Executed a comprehensive social media campaign for a fashion brand, resulting in 300% increase in engagement.", ShortDescription: "300% engagement increase for fashion brand", Category: "Digital Marketing", ClientName: "StyleHub", CompletionDate: "2025-02", Technologies: models.StringList{"Instagram Marketing", "Facebook Ads", "Content Creation", "Analytics"}, IsActive: true},
		{Title: "Manufacturing Sourcing - Electronics", Slug: "electronics-sourcing", Description: "Sourced reliable electronics manufacturers in Southeast Asia, reducing production costs by 40%.", ShortDescription: "40% cost reduction in electronics manufacturing", Category: "Sourcing", ClientName: "ElectroTech Solutions", CompletionDate: "2024-11", Technologies: models.StringList{"Supplier Verification", "Quality Assurance", "Cost Analysis"}, IsActive: true},
		{Title: "Corporate Website Development", Slug: "corporate-website", Description: "Built a modern, responsive corporate website with custom CMS, blog, and lead generation features.", ShortDescription: "Modern corporate website with 95+ PageSpeed", Category: "Web Development", ClientName: "GlobalCorp", CompletionDate: "2024-12", Technologies: models.StringList{"React", "Node.js", "PostgreSQL", "Tailwind CSS"}, IsActive: true},
		{Title: "Brand Identity - Startup", Slug: "startup-branding", Description: "Complete brand identity design for a tech startup including logo, color palette, typography, and brand guidelines.", ShortDescription: "Complete brand identity for tech startup", Category: "Design", ClientName: "InnovateTech", CompletionDate: "2025-01", Technologies: models.StringList{"Adobe Illustrator", "Figma", "Brand Strategy"}, IsActive: true},
	}
	if err := gdb.Create(&projects).Error; err != nil {
		return err
	}

	posts := []models.BlogPost{
		{Title: "Top 10 Recruitment Trends in 2025", Slug: "recruitment-trends-2025", Content: "The recruitment landscape is evolving rapidly. Here are the top 10 trends shaping hiring in 2025:\n\n1. **AI-Powered Screening**\n2. **Remote-First Hiring**\n3. **Skills-Based Hiring**\n4. **Employer Branding**\n5. **Data-Driven Decisions**\n6. **Diversity & Inclusion**\n7. **Candidate Experience**\n8. **Gig Economy Integration**\n9. **Social Recruiting**\n10. **Predictive Analytics**", Excerpt: "Discover the latest recruitment trends shaping the industry in 2025.", Category: "Recruitment", Author: "Admin", IsPublished: true, PublishedAt: "2025-01-15"},
		{Title: "How Digital Marketing Drives Business Growth", Slug: "digital-marketing-business-growth", Content: "In today's digital-first world, effective marketing strategies are essential for business growth.\n\n## SEO Optimization\nSearch engine optimization helps your business appear in relevant search results.\n\n## Social Media Marketing\nEngaging with your audience on social platforms builds brand awareness.\n\n## Content Marketing\nCreating valuable content establishes your authority in your industry.\n\n## PPC Advertising\nPay-per-click advertising provides immediate visibility and measurable ROI.", Excerpt: "Learn how digital marketing strategies can accelerate your business growth.", Category: "Marketing", Author: "Admin", IsPublished: true, PublishedAt: "2025-02-01"},
		{Title: "Effective Sourcing Strategies for Global Businesses", Slug: "global-sourcing-strategies", Content: "Global sourcing requires careful planning and execution.\n\n## 1. Supplier Due Diligence\nThoroughly vet potential suppliers.\n\n## 2. Quality Control Systems\nImplement robust quality control measures.\n\n## 3. Communication Protocols\nEstablish clear communication channels.\n\n## 4. Risk Management\nDevelop contingency plans.\n\n## 5. Sustainable Practices\nPrioritize ethical and sustainable business practices.", Excerpt: "Master the art of global sourcing with these proven strategies.", Category: "Sourcing", Author: "Admin", IsPublished: true, PublishedAt: "2025-02-10"},
	}
	if err := gdb.Create(&posts).Error; err != nil {
		return err
	}

	testimonials := []models.Testimonial{
		{ClientName: "Sarah Johnson", Company: "TechMart Inc.", Review: "Exceeded our expectations in recruiting top tech talent. Their understanding of our industry needs made all the difference.", Rating: 5, IsActive: true, OrderIndex: 1},
		{ClientName: "Michael Chen", Company: "StyleHub", Review: "The digital marketing campaign was phenomenal. We saw a 300% increase in engagement and our online sales skyrocketed.", Rating: 5, IsActive: true, OrderIndex: 2},
		{ClientName: "Ahmed Rahman", Company: "ElectroTech Solutions", Review: "Their sourcing expertise helped us find reliable manufacturers and reduce costs significantly.", Rating: 5, IsActive: true, OrderIndex: 3},
		{ClientName: "Emily Davis", Company: "GlobalCorp", Review: "The website they built for us is exactly what we needed - modern, fast, and easy to manage.", Rating: 5, IsActive: true, OrderIndex: 4},
		{ClientName: "James Wilson", Company: "InnovateTech", Review: "Our brand identity design exceeded all expectations. They captured our vision perfectly.", Rating: 4, IsActive: true, OrderIndex: 5},
		{ClientName: "Lisa Park", Company: "DataFlow Analytics", Review: "The data entry services are accurate and efficient. They've been handling our data processing needs seamlessly.", Rating: 5, IsActive: true, OrderIndex: 6},
	}
	if err := gdb.Create(&testimonials).Error; err != nil {
		return err
	}

	team := []models.TeamMember{
		{Name: "Founder", Designation: "Founder & Managing Director", Bio: "Visionary leader with extensive experience in recruitment, sourcing, and digital marketing.", IsFounder: true, OrderIndex: 1, IsActive: true},
		{Name: "Fatima Ahmed", Designation: "Head of Recruitment", Bio: "Seasoned recruitment professional with 8+ years of experience in talent acquisition.", OrderIndex: 2, IsActive: true},
		{Name: "Rajesh Kumar", Designation: "Digital Marketing Manager", Bio: "Digital marketing expert specializing in SEO, social media strategy, and data-driven campaigns.", OrderIndex: 3, IsActive: true},
		{Name: "Nadia Islam", Designation: "Senior Sourcing Specialist", Bio: "Expert in global sourcing with strong relationships with suppliers across Asia.", OrderIndex: 4, IsActive: true},
		{Name: "David Thompson", Designation: "Lead Web Developer", Bio: "Full-stack developer with expertise in modern web technologies.", OrderIndex: 5, IsActive: true},
		{Name: "Aisha Khan", Designation: "Creative Director", Bio: "Award-winning graphic designer with a keen eye for impactful visual communications.", OrderIndex: 6, IsActive: true},
	}
	if err := gdb.Create(&team).Error; err != nil {
		return err
	}

	platforms := []models.PaymentPlatform{
		{Name: "PayPal", Tagline: "Send money internationally with ease", WebsiteURL: "https://www.paypal.com", Steps: models.StringList{"Create a PayPal account", "Link your bank account or card", "Send payment to our PayPal email", "Share the transaction receipt"}, ColorClass: "blue", IsActive: true, OrderIndex: 1},
		{Name: "Wise (TransferWise)", Tagline: "Low-cost international transfers", WebsiteURL: "https://wise.com", Steps: models.StringList{"Sign up for a Wise account", "Enter our bank details", "Choose the amount and currency", "Complete the transfer and share receipt"}, ColorClass: "green", IsActive: true, OrderIndex: 2},
		{Name: "Western Union", Tagline: "Trusted global money transfer", WebsiteURL: "https://www.westernunion.com", Steps: models.StringList{"Visit a Western Union location or website", "Fill in recipient details", "Make the payment", "Share the MTCN tracking number"}, ColorClass: "yellow", IsActive: true, OrderIndex: 3},
		{Name: "Bank Transfer", Tagline: "Direct bank-to-bank transfer", Steps: models.StringList{"Contact us for bank details", "Initiate a wire transfer from your bank", "Include your order reference", "Share the transfer confirmation"}, ColorClass: "purple", IsActive: true, OrderIndex: 4},
	}
	if err := gdb.Create(&platforms).Error; err != nil {
		return err
	}

	videos := []models.PaymentVideo{
		{Title: "How to Send Payment via PayPal", VideoURL: "https://www.youtube.com/embed/dQw4w9WgXcQ", Description: "Step-by-step guide to sending payment through PayPal", PlatformID: &platforms[0].ID, IsActive: true, OrderIndex: 1},
		{Title: "Using Wise for International Transfers", VideoURL: "https://www.youtube.com/embed/dQw4w9WgXcQ", Description: "Complete guide to using Wise for cost-effective transfers", PlatformID: &platforms[1].ID, IsActive: true, OrderIndex: 2},
	}
	if err := gdb.Create(&videos).Error; err != nil {
		return err
	}

	settings := []models.SiteSetting{
		{Key: "site_name", Value: "Digital Tech Group"},
		{Key: "site_tagline", Value: "Recruitment, Sourcing & Digital Marketing Agency"},
		{Key: "site_description", Value: "Professional Recruitment, Sourcing & Digital Marketing Agency delivering world-class solutions for your business growth."},
		{Key: "contact_email", Value: "info@digitaltechgroup.com"},
		{Key: "contact_phone", Value: "+1 (555) 123-4567"},
		{Key: "contact_address", Value: "123 Business Ave, Suite 100, Digital City, DC 10001"},
		{Key: "social_facebook", Value: "https://facebook.com/digitaltechgroup"},
		{Key: "social_linkedin", Value: "https://linkedin.com/company/digitaltechgroup"},
		{Key: "social_instagram", Value: "https://instagram.com/digitaltechgroup"},
		{Key: "social_youtube", Value: "https://youtube.com/@digitaltechgroup"},
		{Key: "founder_name", Value: "MD Aynal Hossain"},
		{Key: "founder_title", Value: "Founder & Managing Director"},
		{Key: "meta_title", Value: "Digital Tech Group - Recruitment, Sourcing & Digital Marketing"},
		{Key: "meta_description", Value: "Professional Recruitment, Sourcing & Digital Marketing Agency delivering world-class solutions."},
		{Key: "stats_expert_services", Value: "50"},
		{Key: "stats_projects_done", Value: "2000"},
		{Key: "stats_happy_clients", Value: "500"},
		{Key: "stats_orders_done", Value: "5000"},
	}

	return gdb.Create(&settings).Error
}
