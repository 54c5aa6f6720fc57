package catalog

// StaticFallback is the built-in catalog used when no site metadata can be discovered.
func StaticFallback() []Item {
	return []Item{
		{ID: "intro", Title: "欢迎来到项目 👋", Content: "欢迎来到优秀项目的精美文档模板！此模板为提供了一个双主题文档网站，具有优雅的纸张米白色和绚丽的星空夜色主题。", URL: "/docs/intro", Kind: KindDoc, Locale: "zh-Hans"},
		{ID: "api-overview", Title: "API 概述 🔧", Content: "欢迎来到 API 文档！本节提供有关项目的所有可用 API、端点和集成方法的全面信息。", URL: "/docs/api/overview", Kind: KindDoc, Locale: "zh-Hans"},
		{ID: "authentication", Title: "身份验证", Content: "了解如何通过我们的 API 进行身份验证以访问受保护的资源。", URL: "/docs/api/authentication", Kind: KindDoc, Locale: "zh-Hans"},
		{ID: "intro-en", Title: "Welcome to Project 👋", Content: "Welcome to the beautiful documentation template for excellent projects! This template provides a dual-theme documentation website with elegant paper beige and gorgeous starry night themes.", URL: "/en/docs/intro", Kind: KindDoc, Locale: "en"},
		{ID: "api-overview-en", Title: "API Overview 🔧", Content: "Welcome to the API documentation! This section provides comprehensive information about all available APIs, endpoints, and integration methods for the project.", URL: "/en/docs/api/overview", Kind: KindDoc, Locale: "en"},
		{ID: "authentication-en", Title: "Authentication", Content: "Learn how to authenticate with our API to access protected resources.", URL: "/en/docs/api/authentication", Kind: KindDoc, Locale: "en"},
		{ID: "installation", Title: "安装指南 📦", Content: "本指南将帮助安装和设置项目文档网站。", URL: "/docs/getting-started/installation", Kind: KindDoc, Locale: "zh-Hans"},
		{ID: "installation-en", Title: "Installation Guide 📦", Content: "This guide will help you install and set up the project documentation website.", URL: "/en/docs/getting-started/installation", Kind: KindDoc, Locale: "en"},
		{ID: "quickstart", Title: "快速开始指南 🚀", Content: "几分钟内启动并运行项目！本指南将引导完成有效使用项目的基本步骤。", URL: "/docs/getting-started/quickstart", Kind: KindDoc, Locale: "zh-Hans"},
		{ID: "quickstart-en", Title: "Quick Start Guide 🚀", Content: "Get the project up and running in minutes! This guide will walk you through the basic steps to effectively use the project.", URL: "/en/docs/getting-started/quickstart", Kind: KindDoc, Locale: "en"},
		{ID: "configuration", Title: "Configuration", Content: "Learn how to configure the application for your specific needs.", URL: "/docs/getting-started/configuration", Kind: KindDoc, Locale: "zh-Hans"},
		{ID: "configuration-en", Title: "Configuration", Content: "Learn how to configure the application for your specific needs.", URL: "/en/docs/getting-started/configuration", Kind: KindDoc, Locale: "en"},
		{ID: "basic-usage", Title: "基础使用示例", Content: "通过这些基础使用示例快速开始。", URL: "/docs/examples/basic-usage", Kind: KindDoc, Locale: "zh-Hans"},
		{ID: "basic-usage-en", Title: "Basic Usage Examples", Content: "Get started quickly with these basic usage examples.", URL: "/en/docs/examples/basic-usage", Kind: KindDoc, Locale: "en"},
		{ID: "how-to-contribute", Title: "How to Contribute", Content: "Welcome to our contribution guide! We're excited that you're interested in contributing to this project.", URL: "/docs/contributing/how-to-contribute", Kind: KindDoc, Locale: "zh-Hans"},
		{ID: "how-to-contribute-en", Title: "How to Contribute", Content: "Welcome to our contribution guide! We're excited that you're interested in contributing to this project.", URL: "/en/docs/contributing/how-to-contribute", Kind: KindDoc, Locale: "en"},
		{ID: "common-issues", Title: "Common Issues", Content: "Solutions to frequently encountered problems.", URL: "/docs/troubleshooting/common-issues", Kind: KindDoc, Locale: "zh-Hans"},
		{ID: "common-issues-en", Title: "Common Issues", Content: "Solutions to frequently encountered problems.", URL: "/en/docs/troubleshooting/common-issues", Kind: KindDoc, Locale: "en"},
	}
}
