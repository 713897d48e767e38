package knowledge

// Category groups catalog entries by the kind of question they answer.
type Category string

const (
	CategoryMedication Category = "medication"
	CategoryDelivery   Category = "delivery"
	CategoryPayment    Category = "payment"
	CategoryContact    Category = "contact"
	CategoryEmergency  Category = "emergency"
	CategoryRegion     Category = "region"
	CategoryLocation   Category = "location"
	CategoryService    Category = "service"
	CategoryGeneral    Category = "general"
)

// Entry is one static topic record in the assistant's catalog.
// The catalog is seeded once at startup and never written afterwards.
type Entry struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Category  Category `json:"category"`
	Tags      []string `json:"tags"`
	Answer    string   `json:"answer"`
	FollowUps []string `json:"followUps,omitempty"`
}

// Seed provides the default pharmacy catalog. Tags must be lowercase since
// matching compares them against the lowercased query.
func Seed() []Entry {
	return []Entry{
		{
			ID:       "paracetamol",
			Title:    "Paracetamol (Acetaminophen)",
			Category: CategoryMedication,
			Tags:     []string{"paracetamol", "acetaminophen", "headache", "fever", "temperature"},
			Answer: "Paracetamol relieves mild to moderate pain and reduces fever.\n" +
				"Adults: 500mg-1000mg every 4-6 hours, maximum 4000mg per day.\n" +
				"It is gentle on the stomach and safe to take with or without food.\n" +
				"Available at PharmaHub from GHS 5 per pack.",
			FollowUps: []string{
				"Can I take paracetamol on an empty stomach?",
				"What is the difference between paracetamol and ibuprofen?",
			},
		},
		{
			ID:       "pain-relief",
			Title:    "Pain Relief Options",
			Category: CategoryMedication,
			Tags:     []string{"pain", "painkiller", "ibuprofen", "diclofenac", "relief"},
			Answer: "We stock a full range of pain relief medication:\n" +
				"- Ibuprofen 200mg/400mg - for pain with inflammation\n" +
				"- Diclofenac 50mg - for stronger muscle and joint pain\n" +
				"- Paracetamol 500mg - for everyday aches and fever\n" +
				"A pharmacist can help you choose; chat with us or call any branch.",
			FollowUps: []string{
				"Tell me about ibuprofen",
				"Which painkiller is safe during pregnancy?",
			},
		},
		{
			ID:       "malaria-treatment",
			Title:    "Malaria Treatment",
			Category: CategoryMedication,
			Tags:     []string{"malaria", "antimalarial", "artemether", "lumefantrine", "lonart"},
			Answer: "We carry WHO-approved artemether-lumefantrine combinations (Lonart, Coartem).\n" +
				"A full adult course runs 3 days; complete it even if you feel better early.\n" +
				"If symptoms persist after treatment, please see a doctor immediately.",
			FollowUps: []string{
				"Do I need a prescription for antimalarials?",
			},
		},
		{
			ID:       "delivery",
			Title:    "Delivery Information",
			Category: CategoryDelivery,
			Tags:     []string{"delivery", "deliver", "shipping", "courier", "dispatch"},
			Answer: "We deliver across Greater Accra within 24 hours (GHS 10 flat fee).\n" +
				"Orders above GHS 200 ship free. Other regions take 2-3 working days\n" +
				"via our courier partners. You will receive SMS updates at each step.",
			FollowUps: []string{
				"Which regions do you deliver to?",
				"How much is delivery to Kumasi?",
			},
		},
		{
			ID:       "payment",
			Title:    "Payment Methods",
			Category: CategoryPayment,
			Tags:     []string{"payment", "pay", "momo", "mobile money", "mtn", "telecel", "card"},
			Answer: "We accept Mobile Money (MTN MoMo, Telecel Cash, AT Money), Visa and\n" +
				"Mastercard, and cash on delivery within Accra. MoMo payments confirm\n" +
				"instantly - approve the prompt on your phone to complete checkout.",
			FollowUps: []string{
				"Is cash on delivery available?",
				"My MoMo payment failed, what do I do?",
			},
		},
		{
			ID:       "contact",
			Title:    "Contact Us",
			Category: CategoryContact,
			Tags:     []string{"contact", "phone", "call", "email", "whatsapp"},
			Answer: "Reach us any time:\n" +
				"- Phone: 030 274 5500 (8am-9pm daily)\n" +
				"- WhatsApp: 055 123 4567\n" +
				"- Email: care@pharmahub.com.gh\n" +
				"For order issues, have your order number ready.",
		},
		{
			ID:       "emergency",
			Title:    "Emergency Help",
			Category: CategoryEmergency,
			Tags:     []string{"emergency", "urgent", "ambulance", "poison", "overdose"},
			Answer: "If this is a medical emergency, call the National Ambulance Service on 112\n" +
				"right away. For suspected poisoning or overdose, go to the nearest hospital\n" +
				"emergency unit - do not wait for delivery. Our pharmacists cannot handle\n" +
				"emergencies over chat.",
		},
		{
			ID:       "regions",
			Title:    "Coverage Regions",
			Category: CategoryRegion,
			Tags:     []string{"region", "regions", "nationwide", "coverage", "accra", "kumasi", "takoradi"},
			Answer: "PharmaHub serves all 16 regions of Ghana. Same-day delivery is available\n" +
				"in Greater Accra; Ashanti and Western regions get next-day delivery from\n" +
				"our Kumasi and Takoradi branches, everywhere else 2-3 working days.",
			FollowUps: []string{
				"How much is delivery outside Accra?",
			},
		},
		{
			ID:       "branches",
			Title:    "Branch Addresses",
			Category: CategoryLocation,
			Tags:     []string{"branch", "branches", "address", "store", "shop"},
			Answer: "Visit us at any of our branches:\n" +
				"1. Accra - 14 Oxford Street, Osu (main branch)\n" +
				"2. Kumasi - Prempeh II Street, Adum\n" +
				"3. Takoradi - Market Circle, Harbour Road\n" +
				"All branches open Mon-Sat 8am-9pm, Sun 10am-6pm.",
			FollowUps: []string{
				"What are your opening hours?",
			},
		},
		{
			ID:       "prescription",
			Title:    "Prescription Orders",
			Category: CategoryService,
			Tags:     []string{"prescription", "refill", "pharmacist", "doctor", "upload"},
			Answer: "For prescription-only medicines, upload a photo of your prescription at\n" +
				"checkout. A licensed pharmacist reviews every prescription order before\n" +
				"dispatch, usually within 2 hours. Refills can be reordered from your\n" +
				"order history without re-uploading.",
			FollowUps: []string{
				"How do I upload my prescription?",
				"Can I refill a past order?",
			},
		},
		{
			ID:       "about",
			Title:    "About PharmaHub",
			Category: CategoryGeneral,
			Tags:     []string{"pharmahub", "help", "services", "assistant"},
			Answer: "PharmaHub is a licensed online pharmacy registered with the Ghana Pharmacy\n" +
				"Council. I can help you with medication information, delivery, payment,\n" +
				"branch locations and prescription orders - just ask.",
		},
	}
}
