package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteSuffixReorder is the suffix for reorder routes.
	RouteSuffixReorder = "/reorder"
	// RouteSuffixStatus is the suffix for status patch routes.
	RouteSuffixStatus = "/status"

	// RouteParamID is the ID parameter pattern.
	RouteParamID = "/{id}"
	// RouteParamSlug is the slug parameter pattern.
	RouteParamSlug = "/{slug}"

	// RouteLogin is the login route.
	RouteLogin = "/login"
	// RouteLogout is the logout route.
	RouteLogout = "/logout"
	// RouteMe is the current user route.
	RouteMe = "/me"

	// RouteUsers is the users admin route.
	RouteUsers = "/users"
	// RouteHeroSlides is the hero slides admin route.
	RouteHeroSlides = "/hero-slides"
	// RouteEvents is the events admin route.
	RouteEvents = "/events"
	// RouteTestimonials is the testimonials admin route.
	RouteTestimonials = "/testimonials"
	// RouteFaqs is the FAQs admin route.
	RouteFaqs = "/faqs"
	// RouteSocialMedia is the social media links admin route.
	RouteSocialMedia = "/social-media"
	// RoutePackages is the Umrah packages admin route.
	RoutePackages = "/umrah-packages"
	// RouteHotels is the hotels admin route.
	RouteHotels = "/hotels"
	// RouteAirlines is the airlines admin route.
	RouteAirlines = "/airlines"
	// RouteContacts is the contact inbox admin route.
	RouteContacts = "/contacts"
	// RouteNewsletter is the newsletter subscribers admin route.
	RouteNewsletter = "/newsletter"
	// RouteActivity is the activity log admin route.
	RouteActivity = "/activity"

	// RouteUsersID is the users ID route pattern.
	RouteUsersID = RouteUsers + RouteParamID
	// RouteHeroSlidesID is the hero slides ID route pattern.
	RouteHeroSlidesID = RouteHeroSlides + RouteParamID
	// RouteEventsID is the events ID route pattern.
	RouteEventsID = RouteEvents + RouteParamID
	// RouteTestimonialsID is the testimonials ID route pattern.
	RouteTestimonialsID = RouteTestimonials + RouteParamID
	// RouteFaqsID is the FAQs ID route pattern.
	RouteFaqsID = RouteFaqs + RouteParamID
	// RouteSocialMediaID is the social media links ID route pattern.
	RouteSocialMediaID = RouteSocialMedia + RouteParamID
	// RoutePackagesID is the Umrah packages ID route pattern.
	RoutePackagesID = RoutePackages + RouteParamID
	// RouteHotelsID is the hotels ID route pattern.
	RouteHotelsID = RouteHotels + RouteParamID
	// RouteAirlinesID is the airlines ID route pattern.
	RouteAirlinesID = RouteAirlines + RouteParamID
	// RouteContactsID is the contact inbox ID route pattern.
	RouteContactsID = RouteContacts + RouteParamID
	// RouteNewsletterID is the newsletter subscribers ID route pattern.
	RouteNewsletterID = RouteNewsletter + RouteParamID
)

// HTTP header constants.
const (
	// HeaderContentType is the Content-Type header name.
	HeaderContentType = "Content-Type"
)
