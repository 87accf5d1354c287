package generators

var (
	RowIndex    Generator = GeneratorFunc(rowIndex)
	Empty       Generator = GeneratorFunc(empty)
	CustomValue Generator = GeneratorFunc(customValue)

	CPF         Generator = GeneratorFunc(generateCPF)
	CNPJ        Generator = GeneratorFunc(generateCNPJ)
	LocalePhone Generator = GeneratorFunc(localePhone)
	YesNo       Generator = GeneratorFunc(yesNo)

	UUID        Generator = GeneratorFunc(uuid4)
	FullName    Generator = GeneratorFunc(fullName)
	FirstName   Generator = GeneratorFunc(firstName)
	LastName    Generator = GeneratorFunc(lastName)
	CompanyName Generator = GeneratorFunc(companyName)

	Email       Generator = GeneratorFunc(email)
	UserName    Generator = GeneratorFunc(userName)
	URL         Generator = GeneratorFunc(url)
	IPv4        Generator = GeneratorFunc(ipv4)
	PhoneNumber Generator = GeneratorFunc(phoneNumber)

	City          Generator = GeneratorFunc(city)
	State         Generator = GeneratorFunc(state)
	StreetAddress Generator = GeneratorFunc(streetAddress)
	ZipCode       Generator = GeneratorFunc(zipCode)

	Int   Generator = GeneratorFunc(uniformInt)
	Float Generator = GeneratorFunc(uniformFloat)

	PastDate   Generator = dateIn(pastWindow)
	FutureDate Generator = dateIn(futureWindow)
	RecentDate Generator = dateIn(recentWindow)

	Word      Generator = GeneratorFunc(loremWord)
	Sentence  Generator = GeneratorFunc(loremSentence)
	Paragraph Generator = GeneratorFunc(loremParagraph)
)
